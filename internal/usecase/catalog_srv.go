package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"localserve/internal/data/entity"
	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

const defaultRecommendations = 3

type ProviderService interface {
	LoadCatalog(ctx context.Context, req *request.LoadCatalogRequest) (*response.CatalogResponse, error)
	FilterProviders(ctx context.Context, req *request.FilterProvidersRequest) (*response.FilterProvidersResponse, error)
	GetRecommended(ctx context.Context) ([]response.RecommendedProviderResponse, error)
	GetProvider(ctx context.Context, id int) (*entity.Provider, error)
}

// providerService keeps the last loaded catalog so filters narrow what the user saw.
type providerService struct {
	loader      *CatalogLoader
	defaultSize int

	mu      sync.RWMutex
	current []entity.Provider

	log *zap.Logger
}

func NewProviderService(loader *CatalogLoader, config *utils.Config, log *zap.Logger) ProviderService {
	size := config.Catalog.Size
	if size <= 0 {
		size = 20
	}
	return &providerService{
		loader:      loader,
		defaultSize: size,
		log:         log.With(zap.String("service", "provider")),
	}
}

func (s *providerService) LoadCatalog(ctx context.Context, req *request.LoadCatalogRequest) (*response.CatalogResponse, error) {
	if req.Results == 0 {
		req.Results = s.defaultSize
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Load catalog validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	result := s.loader.FetchCatalog(ctx, req.Results)

	s.mu.Lock()
	s.current = result.Providers
	s.mu.Unlock()

	return &response.CatalogResponse{
		Providers: response.ProvidersToResponse(result.Providers),
		Total:     len(result.Providers),
		Fallback:  result.Fallback,
		Message:   result.Message,
	}, nil
}

func (s *providerService) FilterProviders(ctx context.Context, req *request.FilterProvidersRequest) (*response.FilterProvidersResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Filter validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	spec, err := toFilterSpec(req)
	if err != nil {
		return nil, err
	}

	if spec.Location != nil {
		s.log.Info("Location filter requested", zap.String("location", spec.Location.Name))
	}

	providers, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilters(providers, spec)

	return &response.FilterProvidersResponse{
		Providers:     response.ProvidersToResponse(filtered),
		Total:         len(filtered),
		ActiveFilters: ActiveFiltersCount(spec),
	}, nil
}

func (s *providerService) GetRecommended(ctx context.Context) ([]response.RecommendedProviderResponse, error) {
	return response.RecommendedToResponse(s.loader.FetchRecommendations(ctx, defaultRecommendations)), nil
}

func (s *providerService) GetProvider(ctx context.Context, id int) (*entity.Provider, error) {
	providers, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, strconv.Itoa(id))
}

// catalog returns the current snapshot, loading one on first use.
func (s *providerService) catalog(ctx context.Context) ([]entity.Provider, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current != nil {
		return current, nil
	}

	if _, err := s.LoadCatalog(ctx, &request.LoadCatalogRequest{}); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func toFilterSpec(req *request.FilterProvidersRequest) (entity.FilterSpec, error) {
	spec := entity.DefaultFilterSpec()

	if req.Location != nil {
		spec.Location = &entity.Location{
			Name:  req.Location.Name,
			City:  req.Location.City,
			State: req.Location.State,
		}
	}

	for _, st := range req.ServiceTypes {
		serviceType := entity.ServiceType(st)
		if !slices.Contains(entity.ServiceTypes, serviceType) {
			return spec, fmt.Errorf("%w: unknown service type %q", ErrValidation, st)
		}
		spec.ServiceTypes = append(spec.ServiceTypes, serviceType)
	}

	for _, a := range req.Availability {
		availability := entity.Availability(a)
		if !slices.Contains(entity.CatalogAvailability, availability) {
			return spec, fmt.Errorf("%w: unknown availability %q", ErrValidation, a)
		}
		spec.Availability = append(spec.Availability, availability)
	}

	spec.MinRating = req.MinRating

	if req.PriceRange != nil {
		if req.PriceRange.Min != nil {
			spec.PriceRange.Min = *req.PriceRange.Min
		}
		if req.PriceRange.Max != nil {
			spec.PriceRange.Max = *req.PriceRange.Max
		}
		if spec.PriceRange.Min > spec.PriceRange.Max {
			return spec, fmt.Errorf("%w: price range min %d is above max %d",
				ErrValidation, spec.PriceRange.Min, spec.PriceRange.Max)
		}
	}

	return spec, nil
}
