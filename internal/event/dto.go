package event

import "time"

type CreateEventDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Duration    int       `json:"duration"`
}

type UpdateEventDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Duration    *int       `json:"duration"`
}

func (dto UpdateEventDTO) ApplyTo(e *Event) {
	if dto.Title != nil {
		e.Title = *dto.Title
	}
	if dto.Description != nil {
		e.Description = *dto.Description
	}
	if dto.StartDate != nil {
		e.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		e.EndDate = *dto.EndDate
	}
	if dto.Duration != nil {
		e.Duration = *dto.Duration
	}
}
