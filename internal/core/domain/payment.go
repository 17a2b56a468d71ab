package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the outcome of a charge.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

var ErrPaymentDeclined = errors.New("payment declined")
var ErrNotConfirmed = errors.New("reservation has not been accepted by the admin yet")
var ErrCheckoutInProgress = errors.New("checkout already in progress for this reservation")

// Payment is a receipt emitted when a confirmed reservation is successfully
// charged. One payment per reservation in practice.
type Payment struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	ReservationID string        `json:"reservation_id" bson:"reservation_id"`
	UserID        string        `json:"user_id" bson:"user_id"`
	Amount        float64       `json:"amount" bson:"amount"`
	TransactionID string        `json:"transaction_id" bson:"transaction_id"`
	Method        string        `json:"method" bson:"method"`
	Status        PaymentStatus `json:"status" bson:"status"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
}
