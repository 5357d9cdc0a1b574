package usecase

import (
	"context"
	"fmt"

	"localserve/internal/data/entity"
	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, id string) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	RemoveBooking(ctx context.Context, id string) error
}

type bookingService struct {
	store *BookingStore
	log   *zap.Logger
}

func NewBookingService(store *BookingStore, log *zap.Logger) BookingService {
	return &bookingService{
		store: store,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List bookings validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	sortKey := entity.BookingSortKey(req.Sort)
	if sortKey == "" {
		sortKey = entity.SortByDate
	}

	bookings := SortBookings(FilterByStatus(s.store.List(), req.Status), sortKey)

	total := len(bookings)
	limit := req.Limit()
	start, end := utils.PageBounds(total, req.Offset(), limit)

	return response.NewPaginatedResponse(
		response.BookingsToResponse(bookings[start:end]),
		req.Page,
		limit,
		int64(total),
	), nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	found, err := s.store.UpdateStatus(ctx, id, entity.BookingStatus(req.Status))
	if err != nil {
		return nil, fmt.Errorf("update booking %s: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}

	return s.GetBooking(ctx, id)
}

func (s *bookingService) RemoveBooking(ctx context.Context, id string) error {
	found, err := s.store.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("remove booking %s: %w", id, err)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return nil
}
