package request

type StartPaymentRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required"`
}

type PayRequest struct {
	Method string `json:"method" validate:"omitempty,oneof=card upi wallet"`
}
