package middlewares

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// Cors allows the configured origins. Credentials are only allowed for an
// explicit allow list; a "*" entry turns them off.
func Cors(origins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(origins, "*")

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}
