package catalog

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/services/catalog"
	"gitlab.com/classhub-2025.net/internal/handlers/response"
)

type Handler struct {
	catalogService catalog.ICatalogService
	logger         primary.Logger
}

func NewHandler(catalogService catalog.ICatalogService, logger primary.Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/rooms", h.GetRooms).Methods("GET")
	router.HandleFunc("/api/classes", h.GetClasses).Methods("GET")
}

func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.catalogService.ListRooms(r.Context())
	if err != nil {
		h.logger.Error("Failed to list rooms", "error", err)
		response.WriteTypedError(w, err)
		return
	}
	response.WriteSuccess(w, map[string]interface{}{"rooms": rooms})
}

func (h *Handler) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.catalogService.ListClasses(r.Context())
	if err != nil {
		h.logger.Error("Failed to list classes", "error", err)
		response.WriteTypedError(w, err)
		return
	}
	response.WriteSuccess(w, map[string]interface{}{"classes": classes})
}
