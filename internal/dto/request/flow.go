package request

type StartFlowRequest struct {
	ProviderID int `json:"provider_id" validate:"required,min=1"`
}

// SelectSlotRequest may carry only one of the two fields; the flow keeps the other.
type SelectSlotRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time string `json:"time" validate:"omitempty,max=8"`
}
