package timetable

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/services/timetable"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/handlers"
	"gitlab.com/classhub-2025.net/internal/handlers/response"
)

type Handler struct {
	timetableService timetable.ITimetableService
	logger           primary.Logger
}

func NewHandler(timetableService timetable.ITimetableService, logger primary.Logger) *Handler {
	return &Handler{
		timetableService: timetableService,
		logger:           logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.Handle("/api/me", mw.SessionMiddleware(http.HandlerFunc(h.Me))).Methods("GET")
	router.Handle("/api/timetable", mw.SessionMiddleware(http.HandlerFunc(h.GetTimetable))).Methods("GET")
	router.Handle("/api/timetable/{day}/{period}", mw.SessionMiddleware(http.HandlerFunc(h.SetCell))).Methods("PUT")
}

// Me returns the verified session: user identity plus the full timetable.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.SessionFromContext(r.Context())
	if !ok {
		response.WriteError(w, response.ErrorMessage{Message: "no session", StatusCode: http.StatusUnauthorized})
		return
	}
	response.WriteSuccess(w, sess)
}

func (h *Handler) GetTimetable(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.SessionFromContext(r.Context())
	if !ok {
		response.WriteError(w, response.ErrorMessage{Message: "no session", StatusCode: http.StatusUnauthorized})
		return
	}

	grid, err := h.timetableService.Get(r.Context(), sess.UserID)
	if err != nil {
		h.logger.Error("Failed to load timetable", "userId", sess.UserID, "error", err)
		response.WriteTypedError(w, err)
		return
	}
	response.WriteSuccess(w, grid)
}

// SetCellRequest carries the target class reference; null empties the cell.
type SetCellRequest struct {
	ClassID *uuid.UUID `json:"class_id"`
}

// SetCell overwrites one (day, period) cell and returns the updated grid.
func (h *Handler) SetCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	day, err := domain.ParseDay(vars["day"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
		return
	}
	period, err := domain.ParsePeriod(vars["period"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
		return
	}

	var req SetCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	grid, err := h.timetableService.SetCell(r.Context(), handlers.BearerToken(r), day, period, req.ClassID)
	if err != nil {
		h.logger.Error("Failed to set timetable cell", "error", err)
		response.WriteTypedError(w, err)
		return
	}
	response.WriteSuccess(w, grid)
}
