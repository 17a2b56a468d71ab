package handler

import "time"

// --- Request / Response types ---

type createReservationRequest struct {
	CarID     string    `json:"car_id"     validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
	Price     float64   `json:"price"      validate:"required,gt=0"`
}

type updateReservationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// reservationResponse is owned by the transport layer so the JSON contract is
// not coupled to internal domain changes.
type reservationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CarID     string    `json:"car_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type listReservationsResponse struct {
	Data []reservationResponse `json:"data"`
}
