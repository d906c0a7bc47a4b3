package handlers

import (
	"errors"
	"net/http"

	"github.com/Omarrio321/Aran-Repairs/models"
	"github.com/Omarrio321/Aran-Repairs/services/booking"
	"github.com/Omarrio321/Aran-Repairs/services/scheduling"
	"github.com/Omarrio321/Aran-Repairs/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.SessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetSlots returns the bookable start times for a date. A closed or past
// date returns an empty list, which the front end renders as no
// availability.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameter", "date is required (YYYY-MM-DD)")
		return
	}
	slots := scheduling.Slots(date)
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// StartSession opens a wizard session, optionally pre-seeded with a
// category from the home-page shortcut.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		Category models.DeviceType `json:"category"`
	}
	// The body is optional; an empty request starts at category selection.
	_ = c.ShouldBindJSON(&input)

	session, err := h.Service.StartSession(c.Request.Context(), input.Category)
	if err != nil {
		h.Logger.Error("Failed to start booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession fetches the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type updateSessionInput struct {
	Action    string                `json:"action" binding:"required"`
	Category  models.DeviceType     `json:"category,omitempty"`
	BrandID   string                `json:"brandId,omitempty"`
	ModelID   string                `json:"modelId,omitempty"`
	RepairIDs []string              `json:"repairIds,omitempty"`
	Date      string                `json:"date,omitempty"`
	Time      string                `json:"time,omitempty"`
	Contact   models.ContactDetails `json:"contact,omitempty"`
	Step      models.BookingStep    `json:"step,omitempty"`
}

// UpdateSession applies one wizard transition. The action selects which
// step is being completed (or, for "back", revisited).
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var input updateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	var (
		session *models.BookingSession
		err     error
	)
	switch input.Action {
	case "category":
		session, err = h.Service.SelectCategory(ctx, sessionID, input.Category)
	case "brand":
		session, err = h.Service.SelectBrand(ctx, sessionID, input.BrandID)
	case "model":
		session, err = h.Service.SelectModel(ctx, sessionID, input.ModelID)
	case "repairs":
		session, err = h.Service.SetRepairs(ctx, sessionID, input.RepairIDs)
	case "schedule":
		session, err = h.Service.Schedule(ctx, sessionID, input.Date, input.Time, input.Contact)
	case "back":
		session, err = h.Service.Back(ctx, sessionID, input.Step)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "unknown action: "+input.Action)
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmSession completes the wizard and returns the receipt.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	receipt, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// CancelSession discards the wizard session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// respondError maps wizard errors onto HTTP statuses: a missing session is
// 404, guard violations are 400, everything else is 500.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found", err.Error())
	case errors.Is(err, booking.ErrUnknownCategory),
		errors.Is(err, booking.ErrNoCategory),
		errors.Is(err, booking.ErrBrandUnsupported),
		errors.Is(err, booking.ErrUnknownBrand),
		errors.Is(err, booking.ErrNoBrand),
		errors.Is(err, booking.ErrModelMismatch),
		errors.Is(err, booking.ErrUnknownModel),
		errors.Is(err, booking.ErrNoRepairs),
		errors.Is(err, booking.ErrUnknownRepair),
		errors.Is(err, booking.ErrDayNotBookable),
		errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrMissingContact),
		errors.Is(err, booking.ErrNotReady),
		errors.Is(err, booking.ErrInvalidStep):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking step", err.Error())
	default:
		h.Logger.Error("Booking session operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking session operation failed", err.Error())
	}
}
