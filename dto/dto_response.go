package dto

import "meetup_backend/model"

// Every endpoint answers with the same envelope:
// {success, data?, count?, message?}.

type ListEventsResponse struct {
	Success bool          `json:"success" example:"true"`
	Count   int           `json:"count"   example:"7"`
	Data    []model.Event `json:"data"`
}

type EventResponse struct {
	Success bool         `json:"success" example:"true"`
	Data    *model.Event `json:"data"`
}

// DeleteResponse carries an empty object as data, matching the frontend's
// expectation.
type DeleteResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    struct{} `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Event not found"`
}

type HealthResponse struct {
	Status string `json:"status" example:"OK"`
}
