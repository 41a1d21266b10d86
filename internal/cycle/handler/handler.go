// Package handler provides HTTP handlers for review cycle endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cycleModel "github.com/reviewhub/reviewcycles/internal/cycle/model"
	"github.com/reviewhub/reviewcycles/internal/cycle/service"
)

// Handler handles HTTP requests for review cycle endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new cycle handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateCycle handles POST /cycles request.
// @Summary Create a review cycle in DRAFT
// @Tags Cycles
// @Accept json
// @Produce json
// @Param request body cycleModel.CreateCycleRequest true "Request"
// @Success 201 {object} cycleModel.CycleResponse "Created cycle"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateCycle(c *gin.Context) {
	var req cycleModel.CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, cycleModel.ErrInvalidCycleName) {
			errorResponse(c, "INVALID_REQUEST", "name must be between 1 and 255 characters", http.StatusBadRequest)
			return
		}
		if errors.Is(err, cycleModel.ErrInvalidDateRange) {
			errorResponse(c, "INVALID_REQUEST", "end_date must be after start_date", http.StatusBadRequest)
			return
		}
		if errors.Is(err, cycleModel.ErrInvalidGracePeriod) {
			errorResponse(c, "INVALID_REQUEST", "grace_period_days must be between 0 and 7", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating cycle", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListCycles handles GET /cycles request.
// @Summary List all review cycles
// @Tags Cycles
// @Produce json
// @Success 200 {object} map[string][]cycleModel.CycleResponse "Cycles wrapped in cycles object"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListCycles(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing cycles", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"cycles": resp,
	})
}

// GetCycle handles GET /cycles/:cycleId request.
// @Summary Get one review cycle
// @Tags Cycles
// @Produce json
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} cycleModel.CycleResponse "Cycle"
// @Failure 404 {object} ErrorResponse "Cycle not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles/{cycleId} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetCycle(c *gin.Context) {
	cycleID := c.Param("cycleId")

	resp, err := h.service.GetByID(c.Request.Context(), cycleID)
	if err != nil {
		if errors.Is(err, cycleModel.ErrCycleNotFound) {
			notFoundResponse(c, "cycle not found")
			return
		}
		h.logger.Errorw("error getting cycle", "cycle_id", cycleID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ActivateCycle handles POST /cycles/:cycleId/activate request.
// @Summary Activate a DRAFT review cycle
// @Tags Cycles
// @Produce json
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} cycleModel.CycleResponse "Activated cycle"
// @Failure 404 {object} ErrorResponse "Cycle not found"
// @Failure 409 {object} ErrorResponse "Conflict (INVALID_TRANSITION, CYCLE_OVERLAP)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles/{cycleId}/activate [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ActivateCycle(c *gin.Context) {
	cycleID := c.Param("cycleId")

	resp, err := h.service.Activate(c.Request.Context(), cycleID)
	if err != nil {
		h.writeTransitionError(c, cycleID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PublishCycle handles POST /cycles/:cycleId/publish request.
// @Summary Publish a COMPLETED review cycle
// @Tags Cycles
// @Produce json
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} cycleModel.CycleResponse "Published cycle"
// @Failure 404 {object} ErrorResponse "Cycle not found"
// @Failure 409 {object} ErrorResponse "Conflict (INVALID_TRANSITION)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles/{cycleId}/publish [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) PublishCycle(c *gin.Context) {
	cycleID := c.Param("cycleId")

	resp, err := h.service.Publish(c.Request.Context(), cycleID)
	if err != nil {
		h.writeTransitionError(c, cycleID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SweepCycles handles POST /cycles/sweep request. It runs the same pass the
// background sweeper runs on its ticker.
// @Summary Run the lifecycle sweep once
// @Tags Cycles
// @Produce json
// @Success 200 {object} cycleModel.SweepResult "Sweep summary"
// @Router /cycles/sweep [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SweepCycles(c *gin.Context) {
	result := h.service.Sweep(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

// writeTransitionError maps lifecycle errors to their status codes.
func (h *Handler) writeTransitionError(c *gin.Context, cycleID string, err error) {
	if errors.Is(err, cycleModel.ErrCycleNotFound) {
		notFoundResponse(c, "cycle not found")
		return
	}

	var transitionErr *cycleModel.TransitionError
	if errors.As(err, &transitionErr) {
		errorResponse(c, "INVALID_TRANSITION", transitionErr.Error(), http.StatusConflict)
		return
	}

	var overlapErr *cycleModel.OverlapError
	if errors.As(err, &overlapErr) {
		errorResponse(c, "CYCLE_OVERLAP", overlapErr.Error(), http.StatusConflict)
		return
	}

	h.logger.Errorw("error transitioning cycle", "cycle_id", cycleID, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
