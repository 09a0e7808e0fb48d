package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contalibre/contalibre_backend/internal/apperrors"
	portssvc "github.com/contalibre/contalibre_backend/internal/core/ports/services"
	"github.com/contalibre/contalibre_backend/internal/dto"
	"github.com/contalibre/contalibre_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// centralizationHandler handles HTTP requests related to register centralization.
type centralizationHandler struct {
	centralizationService portssvc.CentralizationSvcFacade
}

// newCentralizationHandler creates a new centralizationHandler.
func newCentralizationHandler(cs portssvc.CentralizationSvcFacade) *centralizationHandler {
	return &centralizationHandler{
		centralizationService: cs,
	}
}

// registerCentralizationRoutes registers centralization routes nested under a company.
func registerCentralizationRoutes(rg *gin.RouterGroup, centralizationService portssvc.CentralizationSvcFacade) {
	h := newCentralizationHandler(centralizationService)

	companySpecific := rg.Group("/companies/:company_id")
	{
		companySpecific.POST("/centralizations", h.centralize)
		companySpecific.GET("/entries/:entry_id", h.getEntry)
	}
}

// centralize godoc
// @Summary Centralize a purchase or sale register into journal entries
// @Description Validates coverage, partitions the register into batches, synthesizes balanced journal entries and optionally persists them
// @Tags centralizations
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   request body dto.CentralizationRequest true "Register transactions and options"
// @Success 200 {object} dto.CentralizationResponse "Centralization run result"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} dto.CentralizationResponse "Coverage validation blocked the run"
// @Failure 500 {object} map[string]string "Failed to centralize register"
// @Router /companies/{company_id}/centralizations [post]
func (h *centralizationHandler) centralize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	req := dto.CentralizationRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for Centralize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.String("period", req.Period),
		slog.String("direction", req.Direction),
	)

	resp, err := h.centralizationService.Centralize(c.Request.Context(), companyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error centralizing register", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to centralize register in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to centralize register"})
		}
		return
	}

	if !resp.Validation.IsValid {
		logger.Warn("Centralization blocked by coverage validation",
			slog.Int("missing_entities", len(resp.Validation.MissingEntities)),
			slog.Int("missing_accounts", len(resp.Validation.MissingAccounts)))
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	logger.Info("Register centralized successfully",
		slog.Int("batches", len(resp.Batches)),
		slog.Int("entries", len(resp.Entries)),
		slog.Int("persisted", len(resp.PersistedEntryIDs)))
	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a persisted journal entry
// @Description Retrieves a journal entry and its detail lines by entry ID
// @Tags centralizations
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   entry_id path string true "Entry ID"
// @Success 200 {object} dto.GetEntryResponse "Journal entry with detail lines"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /companies/{company_id}/entries/{entry_id} [get]
func (h *centralizationHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	entryID := c.Param("entry_id")

	resp, err := h.centralizationService.GetEntry(c.Request.Context(), companyID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to get entry from service", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}

	logger.Debug("Entry retrieved successfully", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, resp)
}
