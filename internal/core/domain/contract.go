package domain

import (
	"errors"
	"time"
)

var ErrContractNotFound = errors.New("contract not found")

// Contract is the finalized rental agreement, tied 1:1 to a paid reservation.
// At most one contract may reference a given reservation.
type Contract struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ContractNumber string    `json:"contract_number" bson:"contract_number"`
	ReservationID  string    `json:"reservation_id" bson:"reservation_id"`
	UserID         string    `json:"user_id" bson:"user_id"`
	StartDate      time.Time `json:"start_date" bson:"start_date"`
	EndDate        time.Time `json:"end_date" bson:"end_date"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
