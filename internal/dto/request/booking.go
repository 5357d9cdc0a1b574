package request

type ListBookingsRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=all pending confirmed completed"`
	Sort   string `json:"sort" validate:"omitempty,oneof=date price status"`
	PaginatedRequest
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed"`
}
