package booking

import (
	"context"
	"errors"

	"github.com/Omarrio321/Aran-Repairs/models"
)

// Sentinel errors returned by the wizard. Handlers map ErrSessionNotFound
// to 404 and everything else in this list to 400.
var (
	ErrSessionNotFound  = errors.New("booking session not found or expired")
	ErrUnknownCategory  = errors.New("unknown device category")
	ErrNoCategory       = errors.New("no device category selected yet")
	ErrBrandUnsupported = errors.New("brand does not service the selected device category")
	ErrUnknownBrand     = errors.New("unknown brand")
	ErrNoBrand          = errors.New("no brand selected yet")
	ErrModelMismatch    = errors.New("model does not belong to the selected brand and category")
	ErrUnknownModel     = errors.New("unknown model")
	ErrNoRepairs        = errors.New("at least one repair must be selected")
	ErrUnknownRepair    = errors.New("repair is not on the menu for this device")
	ErrDayNotBookable   = errors.New("date is in the past or the shop is closed")
	ErrSlotUnavailable  = errors.New("time slot is not available on that date")
	ErrMissingContact   = errors.New("name, phone and email are all required")
	ErrNotReady         = errors.New("booking is missing a date, time or contact details")
	ErrInvalidStep      = errors.New("cannot navigate to that step")
)

// SessionStore caches wizard sessions by ID for the session TTL.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Set(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionService drives the repair wizard: a linear, back-navigable flow
// from category selection through to a confirmed receipt.
type SessionService interface {
	StartSession(ctx context.Context, category models.DeviceType) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectCategory(ctx context.Context, sessionID string, category models.DeviceType) (*models.BookingSession, error)
	SelectBrand(ctx context.Context, sessionID, brandID string) (*models.BookingSession, error)
	SelectModel(ctx context.Context, sessionID, modelID string) (*models.BookingSession, error)
	SetRepairs(ctx context.Context, sessionID string, repairIDs []string) (*models.BookingSession, error)
	Schedule(ctx context.Context, sessionID, date, timeSlot string, contact models.ContactDetails) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string, step models.BookingStep) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingReceipt, error)
	CancelSession(ctx context.Context, sessionID string) error
}
