package adaptor

import (
	"encoding/json"
	"net/http"

	"localserve/internal/dto/request"
	"localserve/internal/usecase"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

type ProviderHandler struct {
	service usecase.ProviderService
	log     *zap.Logger
}

func NewProviderHandler(service usecase.ProviderService, log *zap.Logger) *ProviderHandler {
	return &ProviderHandler{
		service: service,
		log:     log.With(zap.String("handler", "provider")),
	}
}

// LoadCatalog handles GET /api/providers?results=N. A failed upstream fetch
// still answers 200 with the fallback list; the message goes into errors.
func (h *ProviderHandler) LoadCatalog(w http.ResponseWriter, r *http.Request) {
	req := &request.LoadCatalogRequest{
		Results: utils.ParseInt(r.URL.Query().Get("results"), 0),
	}

	catalog, err := h.service.LoadCatalog(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "load catalog")
		return
	}

	if catalog.Fallback {
		utils.ResponseDegraded(w, "success", catalog, catalog.Message)
		return
	}

	utils.ResponseSuccess(w, "success", catalog)
}

// FilterProviders handles POST /api/providers/filter
func (h *ProviderHandler) FilterProviders(w http.ResponseWriter, r *http.Request) {
	var req request.FilterProvidersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.FilterProviders(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "filter providers")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetRecommended handles GET /api/providers/recommended
func (h *ProviderHandler) GetRecommended(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.GetRecommended(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get recommended providers")
		return
	}

	utils.ResponseSuccess(w, "success", providers)
}
