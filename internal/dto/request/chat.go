package request

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}
