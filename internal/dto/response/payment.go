package response

import (
	"fmt"
	"time"

	"localserve/internal/data/entity"
)

type PaymentResponse struct {
	ID              string               `json:"id"`
	ProviderID      string               `json:"provider_id"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	Amount          int                  `json:"amount"`
	AmountLabel     string               `json:"amount_label"`
	Method          entity.PaymentMethod `json:"method,omitempty"`
	Status          entity.PaymentStatus `json:"status"`
	RedirectTo      string               `json:"redirect_to,omitempty"`
	RedirectAfterMs int64                `json:"redirect_after_ms,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	PaidAt          *time.Time           `json:"paid_at,omitempty"`
}

func PaymentToResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID.String(),
		ProviderID:      p.ProviderID,
		Date:            p.Date,
		Time:            p.Time,
		Amount:          p.Amount,
		AmountLabel:     fmt.Sprintf("₹%d", p.Amount),
		Method:          p.Method,
		Status:          p.Status,
		RedirectTo:      p.RedirectTo,
		RedirectAfterMs: p.RedirectAfter.Milliseconds(),
		CreatedAt:       p.CreatedAt,
		PaidAt:          p.PaidAt,
	}
}
