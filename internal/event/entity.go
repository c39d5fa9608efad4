package event

import "time"

// Event is a calendar entry spanning [StartDate, EndDate]. Duration is in
// minutes and is stored as given by the client.
type Event struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Duration    int       `json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Overlaps reports whether the event intersects [start, end].
func (e *Event) Overlaps(start, end time.Time) bool {
	return !e.EndDate.Before(start) && !e.StartDate.After(end)
}
