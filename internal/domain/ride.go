package domain

// RideRequest is the payload the mini-app posts to /ride. Coordinates are
// pointers so an absent or null value is distinguishable from 0.
type RideRequest struct {
	Destination string   `json:"destination" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,lat"`
	Longitude   *float64 `json:"longitude" validate:"required,lng"`
}

type RideAccepted struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
