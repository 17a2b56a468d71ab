package handler

import (
	"github.com/velocar/rental-system/internal/core/domain"
)

// --- Service result → HTTP response ---

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		CarID:     r.CarID,
		StartDate: r.StartDate.UTC(),
		EndDate:   r.EndDate.UTC(),
		Price:     r.Price,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toListReservationsResponse(items []*domain.Reservation) listReservationsResponse {
	out := make([]reservationResponse, len(items))
	for i, r := range items {
		out[i] = toReservationResponse(r)
	}
	return listReservationsResponse{Data: out}
}
