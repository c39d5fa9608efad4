package event_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-planner/internal/auth"
	"github.com/saulo-duarte/chronos-planner/internal/config"
	"github.com/saulo-duarte/chronos-planner/internal/event"
	"github.com/saulo-duarte/chronos-planner/internal/store"
	util "github.com/saulo-duarte/chronos-planner/internal/utils"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
)

func setupService() event.EventService {
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("event-%d", n)
	}
	clock := util.FixedClock(time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC))
	col := store.NewCollection[event.Event](store.NewMemoryBackend(), store.EventsCollection)
	return event.NewService(event.NewEventRepository(col, clock, newID))
}

func at(day, hour int) time.Time {
	return time.Date(2024, time.May, day, hour, 0, 0, 0, time.UTC)
}

func meeting(title string, start, end time.Time) event.CreateEventDTO {
	return event.CreateEventDTO{
		Title:     title,
		StartDate: start,
		EndDate:   end,
		Duration:  int(end.Sub(start).Minutes()),
	}
}

func TestCreateEventValidation(t *testing.T) {
	ctx := context.Background()
	svc := setupService()

	tests := []struct {
		name  string
		dto   event.CreateEventDTO
		field string
	}{
		{"MissingTitle", meeting(" ", at(2, 9), at(2, 10)), "title"},
		{"MissingStart", event.CreateEventDTO{Title: "x", EndDate: at(2, 10), Duration: 60}, "startDate"},
		{"MissingEnd", event.CreateEventDTO{Title: "x", StartDate: at(2, 10), Duration: 60}, "endDate"},
		{"EndBeforeStart", event.CreateEventDTO{Title: "x", StartDate: at(2, 10), EndDate: at(2, 9), Duration: 60}, "endDate"},
		{"MissingDuration", event.CreateEventDTO{Title: "x", StartDate: at(2, 9), EndDate: at(2, 10)}, "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(ctx, ownerA, tt.dto)
			require.True(t, config.IsValidationError(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := setupService()

	created, err := svc.CreateEvent(ctx, ownerA, meeting("Standup", at(2, 9), at(2, 10)))
	require.NoError(t, err)
	assert.Equal(t, "event-1", created.ID)
	assert.Equal(t, 60, created.Duration)

	_, err = svc.GetEvent(ctx, ownerB, created.ID)
	assert.ErrorIs(t, err, event.ErrEventNotFound)

	_, err = svc.UpdateEvent(ctx, ownerA, created.ID, event.UpdateEventDTO{EndDate: ptr(at(1, 9))})
	assert.True(t, config.IsValidationError(err))

	updated, err := svc.UpdateEvent(ctx, ownerA, created.ID, event.UpdateEventDTO{Title: ptr("Retro"), Duration: ptr(45)})
	require.NoError(t, err)
	assert.Equal(t, "Retro", updated.Title)
	assert.Equal(t, 45, updated.Duration)
	assert.Equal(t, at(2, 9), updated.StartDate)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, ownerB, created.ID), event.ErrEventNotFound)
	require.NoError(t, svc.DeleteEvent(ctx, ownerA, created.ID))

	events, err := svc.ListEvents(ctx, ownerA)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListEventsInWindow(t *testing.T) {
	ctx := context.Background()
	svc := setupService()

	for _, dto := range []event.CreateEventDTO{
		meeting("before", at(1, 9), at(1, 10)),
		meeting("spans start", at(1, 22), at(2, 2)),
		meeting("inside", at(2, 12), at(2, 13)),
		meeting("touches end", at(3, 0), at(3, 1)),
		meeting("after", at(4, 9), at(4, 10)),
	} {
		_, err := svc.CreateEvent(ctx, ownerA, dto)
		require.NoError(t, err)
	}
	_, err := svc.CreateEvent(ctx, ownerB, meeting("not mine", at(2, 12), at(2, 13)))
	require.NoError(t, err)

	got, err := svc.ListEventsInWindow(ctx, ownerA, at(2, 0), at(3, 0))
	require.NoError(t, err)

	titles := make([]string, 0, len(got))
	for _, e := range got {
		titles = append(titles, e.Title)
	}
	assert.ElementsMatch(t, []string{"spans start", "inside", "touches end"}, titles)

	_, err = svc.ListEventsInWindow(ctx, ownerA, at(3, 0), at(2, 0))
	assert.True(t, config.IsValidationError(err))
}

func TestEventHandler(t *testing.T) {
	h := event.Routes(event.NewHandler(setupService()))

	serve := func(owner, method, path, body string) (int, config.Response) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if owner != "" {
			req = req.WithContext(auth.ContextWithClaims(req.Context(), &auth.Claims{UserID: owner}))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var resp config.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return rec.Code, resp
	}

	code, _ := serve("", http.MethodGet, "/", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, resp := serve(ownerA, http.MethodPost, "/",
		`{"title":"Dentist","startDate":"2024-05-02T14:00:00Z","endDate":"2024-05-02T15:00:00Z","duration":60}`)
	require.Equal(t, http.StatusCreated, code)
	id := resp.Data.(map[string]any)["id"].(string)

	code, resp = serve(ownerA, http.MethodGet, "/?start=2024-05-02&end=2024-05-02", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Data, 1)

	code, resp = serve(ownerA, http.MethodGet, "/?start=2024-05-03T00:00:00Z&end=2024-05-04T00:00:00Z", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Data, 0)

	code, _ = serve(ownerA, http.MethodGet, "/?start=2024-05-02", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = serve(ownerA, http.MethodGet, "/?start=soon&end=later", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = serve(ownerA, http.MethodPost, "/", `{"title":"Broken","startDate":"2024-05-02T14:00:00Z","endDate":"2024-05-02T13:00:00Z","duration":60}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Error, "endDate")

	code, _ = serve(ownerB, http.MethodDelete, "/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = serve(ownerA, http.MethodDelete, "/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Event deleted successfully", resp.Message)
}

func ptr[T any](v T) *T {
	return &v
}
