package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusAwaitingMethod PaymentStatus = "awaiting_method"
	PaymentStatusProcessing     PaymentStatus = "processing"
	PaymentStatusSucceeded      PaymentStatus = "succeeded"
)

type Payment struct {
	ID            uuid.UUID     `json:"id"`
	ProviderID    string        `json:"providerId"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Amount        int           `json:"amount"`
	Method        PaymentMethod `json:"method,omitempty"`
	Status        PaymentStatus `json:"status"`
	RedirectTo    string        `json:"redirectTo,omitempty"`
	RedirectAfter time.Duration `json:"-"`
	CreatedAt     time.Time     `json:"createdAt"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
}
