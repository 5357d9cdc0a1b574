package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"localserve/internal/data/entity"
	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const finishedFlowTTL = time.Hour

var flowTransitions = map[entity.FlowState]map[entity.FlowEvent]entity.FlowState{
	entity.FlowStateDetails: {
		entity.FlowEventContinue: entity.FlowStateConfirm,
		entity.FlowEventCancel:   entity.FlowStateCancelled,
		entity.FlowEventClose:    entity.FlowStateCancelled,
	},
	entity.FlowStateConfirm: {
		entity.FlowEventBack:    entity.FlowStateDetails,
		entity.FlowEventConfirm: entity.FlowStateSuccess,
		entity.FlowEventClose:   entity.FlowStateCancelled,
	},
}

// NextFlowState looks event up in the transition table. Success and cancelled accept nothing.
func NextFlowState(current entity.FlowState, event entity.FlowEvent) (entity.FlowState, error) {
	next, ok := flowTransitions[current][event]
	if !ok {
		return current, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, current)
	}
	return next, nil
}

// ProviderLookup resolves a provider of the current catalog by id.
type ProviderLookup interface {
	GetProvider(ctx context.Context, id int) (*entity.Provider, error)
}

type BookingFlowService interface {
	Start(ctx context.Context, req *request.StartFlowRequest) (*response.FlowResponse, error)
	Get(ctx context.Context, id string) (*response.FlowResponse, error)
	Select(ctx context.Context, id string, req *request.SelectSlotRequest) (*response.FlowResponse, error)
	Continue(ctx context.Context, id string) (*response.FlowResponse, error)
	Back(ctx context.Context, id string) (*response.FlowResponse, error)
	Confirm(ctx context.Context, id string) (*response.FlowResponse, error)
	Cancel(ctx context.Context, id string) (*response.FlowResponse, error)
	Close(ctx context.Context, id string) error
}

type flowEntry struct {
	flow  entity.BookingFlow
	abort context.CancelFunc
}

type bookingFlowService struct {
	providers ProviderLookup
	store     *BookingStore
	delay     time.Duration
	now       func() time.Time

	mu    sync.Mutex
	flows map[uuid.UUID]*flowEntry

	log *zap.Logger
}

func NewBookingFlowService(providers ProviderLookup, store *BookingStore, config *utils.Config, log *zap.Logger) BookingFlowService {
	return &bookingFlowService{
		providers: providers,
		store:     store,
		delay:     config.Booking.ConfirmDelay,
		now:       time.Now,
		flows:     make(map[uuid.UUID]*flowEntry),
		log:       log.With(zap.String("service", "booking_flow")),
	}
}

func (s *bookingFlowService) Start(ctx context.Context, req *request.StartFlowRequest) (*response.FlowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Start flow validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	provider, err := s.providers.GetProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	flow := entity.BookingFlow{
		ID:        uuid.New(),
		Provider:  *provider,
		State:     entity.FlowStateDetails,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.pruneLocked(now)
	s.flows[flow.ID] = &flowEntry{flow: flow}
	s.mu.Unlock()

	s.log.Info("Booking flow started",
		zap.String("flow_id", flow.ID.String()),
		zap.Int("provider_id", provider.ID))

	return flowResponse(flow), nil
}

func (s *bookingFlowService) Get(ctx context.Context, id string) (*response.FlowResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(id)
	if err != nil {
		return nil, err
	}
	return flowResponse(entry.flow), nil
}

// Select records a date and/or time slot while in the details step.
func (s *bookingFlowService) Select(ctx context.Context, id string, req *request.SelectSlotRequest) (*response.FlowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Select slot validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(id)
	if err != nil {
		return nil, err
	}
	if entry.flow.State != entity.FlowStateDetails {
		return nil, fmt.Errorf("%w: select in %s", ErrInvalidTransition, entry.flow.State)
	}

	if req.Date != "" {
		if err := s.checkDate(req.Date); err != nil {
			return nil, err
		}
		entry.flow.Date = req.Date
	}
	if req.Time != "" {
		if !entity.IsTimeSlot(req.Time) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.Time)
		}
		entry.flow.Time = req.Time
	}
	entry.flow.UpdatedAt = s.now()

	return flowResponse(entry.flow), nil
}

func (s *bookingFlowService) Continue(ctx context.Context, id string) (*response.FlowResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(id)
	if err != nil {
		return nil, err
	}

	next, err := NextFlowState(entry.flow.State, entity.FlowEventContinue)
	if err != nil {
		return nil, err
	}
	if entry.flow.Date == "" || entry.flow.Time == "" {
		return nil, ErrSelectionIncomplete
	}
	if err := s.checkDate(entry.flow.Date); err != nil {
		return nil, err
	}

	s.moveLocked(entry, next)
	return flowResponse(entry.flow), nil
}

func (s *bookingFlowService) Back(ctx context.Context, id string) (*response.FlowResponse, error) {
	return s.simpleEvent(id, entity.FlowEventBack)
}

func (s *bookingFlowService) Cancel(ctx context.Context, id string) (*response.FlowResponse, error) {
	return s.simpleEvent(id, entity.FlowEventCancel)
}

// Confirm waits the simulated processing delay, then records a pending booking.
// Closing the flow meanwhile aborts the wait and nothing is written.
func (s *bookingFlowService) Confirm(ctx context.Context, id string) (*response.FlowResponse, error) {
	s.mu.Lock()
	entry, err := s.entryLocked(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if entry.flow.Processing {
		s.mu.Unlock()
		return nil, ErrFlowBusy
	}
	if _, err := NextFlowState(entry.flow.State, entity.FlowEventConfirm); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	waitCtx, abort := context.WithCancel(ctx)
	defer abort()

	entry.abort = abort
	entry.flow.Processing = true
	entry.flow.UpdatedAt = s.now()
	s.mu.Unlock()

	waitErr := utils.Wait(waitCtx, s.delay)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.abort = nil
	entry.flow.Processing = false

	if entry.flow.State != entity.FlowStateConfirm {
		s.log.Info("Booking flow closed during processing", zap.String("flow_id", id))
		return nil, ErrFlowClosed
	}
	if waitErr != nil {
		return nil, fmt.Errorf("confirm booking flow: %w", waitErr)
	}

	flow := &entry.flow
	rating := flow.Provider.Rating
	booking, err := s.store.Add(ctx, entity.BookingDraft{
		Service:       string(flow.Provider.ServiceType),
		Provider:      flow.Provider.Name,
		ProviderPhoto: flow.Provider.Photo,
		Date:          flow.Date + ", " + flow.Time,
		Time:          flow.Time,
		Status:        entity.BookingStatusPending,
		Price:         flow.Provider.Price,
		Rating:        &rating,
		Location:      flow.Provider.Distance,
		ServiceType:   string(flow.Provider.ServiceType),
		Distance:      flow.Provider.Distance,
	})
	if err != nil && booking.ID == "" {
		return nil, fmt.Errorf("confirm booking flow: %w", err)
	}
	if err != nil {
		s.log.Warn("Booking recorded but not persisted", zap.Error(err), zap.String("booking_id", booking.ID))
	}

	flow.Booking = &booking
	flow.RedirectTo = paymentRedirect(flow.Provider.ID, flow.Date, flow.Time)
	s.moveLocked(entry, entity.FlowStateSuccess)

	s.log.Info("Booking flow completed",
		zap.String("flow_id", id),
		zap.String("booking_id", booking.ID))

	return flowResponse(entry.flow), nil
}

// Close tears the flow down from any non-terminal state and drops it from the registry.
func (s *bookingFlowService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(id)
	if err != nil {
		return err
	}

	if next, err := NextFlowState(entry.flow.State, entity.FlowEventClose); err == nil {
		s.moveLocked(entry, next)
	}
	if entry.abort != nil {
		entry.abort()
	}

	delete(s.flows, entry.flow.ID)
	s.log.Info("Booking flow closed", zap.String("flow_id", id))
	return nil
}

func (s *bookingFlowService) simpleEvent(id string, event entity.FlowEvent) (*response.FlowResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(id)
	if err != nil {
		return nil, err
	}
	if entry.flow.Processing {
		return nil, ErrFlowBusy
	}

	next, err := NextFlowState(entry.flow.State, event)
	if err != nil {
		return nil, err
	}

	s.moveLocked(entry, next)
	return flowResponse(entry.flow), nil
}

// checkDate rejects malformed dates and days before today.
func (s *bookingFlowService) checkDate(value string) error {
	now := s.now()
	date, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return fmt.Errorf("%w: %s", ErrDateInPast, value)
	}
	return nil
}

func (s *bookingFlowService) entryLocked(id string) (*flowEntry, error) {
	flowID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingFlowNotFound, id)
	}

	entry, ok := s.flows[flowID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBookingFlowNotFound, id)
	}
	return entry, nil
}

func (s *bookingFlowService) moveLocked(entry *flowEntry, next entity.FlowState) {
	s.log.Debug("Booking flow transition",
		zap.String("flow_id", entry.flow.ID.String()),
		zap.String("from", string(entry.flow.State)),
		zap.String("to", string(next)))

	entry.flow.State = next
	entry.flow.UpdatedAt = s.now()
}

// pruneLocked drops finished flows nobody looked at for a while.
func (s *bookingFlowService) pruneLocked(now time.Time) {
	for id, entry := range s.flows {
		finished := entry.flow.State == entity.FlowStateSuccess || entry.flow.State == entity.FlowStateCancelled
		if finished && now.Sub(entry.flow.UpdatedAt) > finishedFlowTTL {
			delete(s.flows, id)
		}
	}
}

func paymentRedirect(providerID int, date, slot string) string {
	return "/payment?provider=" + strconv.Itoa(providerID) +
		"&date=" + url.QueryEscape(date) +
		"&time=" + url.QueryEscape(slot)
}

func flowResponse(flow entity.BookingFlow) *response.FlowResponse {
	resp := response.FlowToResponse(flow)
	return &resp
}
