package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Omarrio321/Aran-Repairs/catalog"
	"github.com/Omarrio321/Aran-Repairs/models"
	"github.com/Omarrio321/Aran-Repairs/services/scheduling"

	"github.com/google/uuid"
)

// DefaultSessionService is the concrete wizard implementation. Now is
// injectable so tests can pin the calendar.
type DefaultSessionService struct {
	Store SessionStore
	Now   func() time.Time
}

func (s *DefaultSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartSession creates a fresh wizard session. When a known category is
// supplied (the home-page shortcut), the session is pre-seeded and starts
// at the brand step; otherwise it starts at category selection.
func (s *DefaultSessionService) StartSession(ctx context.Context, category models.DeviceType) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepCategory,
	}
	if cat, ok := catalog.CategoryByID(category); ok {
		session.Category = &cat
		session.Step = models.StepBrand
	}
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("booking: failed to cache session: %w", err)
	}
	return session, nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultSessionService) SelectCategory(ctx context.Context, sessionID string, category models.DeviceType) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cat, ok := catalog.CategoryByID(category)
	if !ok {
		return nil, ErrUnknownCategory
	}
	session.Category = &cat
	session.Step = models.StepBrand
	return session, s.save(ctx, session)
}

func (s *DefaultSessionService) SelectBrand(ctx context.Context, sessionID, brandID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Category == nil {
		return nil, ErrNoCategory
	}
	brand, ok := catalog.BrandByID(brandID)
	if !ok {
		return nil, ErrUnknownBrand
	}
	if !brand.Supports(session.Category.ID) {
		return nil, ErrBrandUnsupported
	}
	session.Brand = &brand
	session.Step = models.StepModel
	return session, s.save(ctx, session)
}

func (s *DefaultSessionService) SelectModel(ctx context.Context, sessionID, modelID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Category == nil {
		return nil, ErrNoCategory
	}
	if session.Brand == nil {
		return nil, ErrNoBrand
	}
	model, ok := catalog.ModelByID(modelID)
	if !ok {
		return nil, ErrUnknownModel
	}
	if model.BrandID != session.Brand.ID || model.Type != session.Category.ID {
		return nil, ErrModelMismatch
	}
	session.Model = &model
	session.Step = models.StepRepairs
	return session, s.save(ctx, session)
}

// SetRepairs replaces the selected repair set. IDs are resolved against the
// category's menu and deduplicated; an empty set cannot advance the wizard.
func (s *DefaultSessionService) SetRepairs(ctx context.Context, sessionID string, repairIDs []string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Category == nil {
		return nil, ErrNoCategory
	}
	if len(repairIDs) == 0 {
		return nil, ErrNoRepairs
	}

	seen := make(map[string]bool, len(repairIDs))
	var repairs []models.RepairOption
	for _, id := range repairIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		repair, ok := catalog.RepairByID(session.Category.ID, id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRepair, id)
		}
		repairs = append(repairs, repair)
	}

	session.Repairs = repairs
	session.Step = models.StepSchedule
	return session, s.save(ctx, session)
}

// Schedule records the appointment and contact details. The slot must be
// one the calculator produces for that date, and the date itself must be
// bookable (not past, not a Sunday).
func (s *DefaultSessionService) Schedule(ctx context.Context, sessionID, date, timeSlot string, contact models.ContactDetails) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Repairs) == 0 {
		return nil, ErrNoRepairs
	}
	if !scheduling.DayBookable(date, s.now()) {
		return nil, ErrDayNotBookable
	}
	if !scheduling.HasSlot(date, timeSlot) {
		return nil, ErrSlotUnavailable
	}
	if !contact.Complete() {
		return nil, ErrMissingContact
	}

	session.Date = date
	session.Time = timeSlot
	session.Contact = contact
	session.Step = models.StepSchedule
	return session, s.save(ctx, session)
}

// Back navigates to an earlier step. Selections made on later steps are
// kept, so stepping forward again needs no re-entry.
func (s *DefaultSessionService) Back(ctx context.Context, sessionID string, step models.BookingStep) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if step < models.StepCategory || step >= session.Step {
		return nil, ErrInvalidStep
	}
	session.Step = step
	return session, s.save(ctx, session)
}

// Confirm finishes the wizard and returns the receipt. The session is
// discarded; the receipt is presentation only, nothing is submitted.
func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingReceipt, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Brand == nil || session.Model == nil || len(session.Repairs) == 0 {
		return nil, ErrNotReady
	}
	if session.Date == "" || session.Time == "" || !session.Contact.Complete() {
		return nil, ErrNotReady
	}

	receipt := &models.BookingReceipt{
		SessionID:  session.SessionID,
		Brand:      session.Brand.Name,
		Model:      session.Model.Name,
		Repairs:    session.Repairs,
		Date:       session.Date,
		Time:       session.Time,
		Contact:    session.Contact,
		TotalPrice: session.TotalPrice(),
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("booking: failed to discard session: %w", err)
	}
	return receipt, nil
}

func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultSessionService) save(ctx context.Context, session *models.BookingSession) error {
	if err := s.Store.Set(ctx, session); err != nil {
		return fmt.Errorf("booking: failed to cache session: %w", err)
	}
	return nil
}
