package booking

import (
	"context"
	"testing"
	"time"

	"github.com/Omarrio321/Aran-Repairs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is the in-memory SessionStore used in tests.
type memSessionStore struct {
	sessions map[string]models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memSessionStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := s
	return &copied, nil
}

func (m *memSessionStore) Set(_ context.Context, session *models.BookingSession) error {
	m.sessions[session.SessionID] = *session
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// Fixed clock: Tuesday 2026-09-01.
func testService() *DefaultSessionService {
	return &DefaultSessionService{
		Store: newMemSessionStore(),
		Now: func() time.Time {
			return time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
		},
	}
}

var contact = models.ContactDetails{
	Name:  "Jan de Vries",
	Email: "jan@example.com",
	Phone: "+31 6 12345678",
}

func TestStartSession(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	t.Run("starts at category selection", func(t *testing.T) {
		session, err := svc.StartSession(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, models.StepCategory, session.Step)
		assert.Nil(t, session.Category)
		assert.NotEmpty(t, session.SessionID)
	})

	t.Run("pre-seeded category skips to brand selection", func(t *testing.T) {
		session, err := svc.StartSession(ctx, models.DeviceTablet)
		require.NoError(t, err)
		assert.Equal(t, models.StepBrand, session.Step)
		require.NotNil(t, session.Category)
		assert.Equal(t, models.DeviceTablet, session.Category.ID)
	})

	t.Run("unknown category is ignored", func(t *testing.T) {
		session, err := svc.StartSession(ctx, "toaster")
		require.NoError(t, err)
		assert.Equal(t, models.StepCategory, session.Step)
		assert.Nil(t, session.Category)
	})
}

func TestWizardGuards(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	id := session.SessionID

	t.Run("category must be known", func(t *testing.T) {
		_, err := svc.SelectCategory(ctx, id, "toaster")
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	_, err = svc.SelectCategory(ctx, id, models.DevicePhone)
	require.NoError(t, err)

	t.Run("brand must service the category", func(t *testing.T) {
		_, err := svc.SelectBrand(ctx, id, "nintendo")
		assert.ErrorIs(t, err, ErrBrandUnsupported)
	})

	_, err = svc.SelectBrand(ctx, id, "apple")
	require.NoError(t, err)

	t.Run("model must match brand and category", func(t *testing.T) {
		_, err := svc.SelectModel(ctx, id, "s23")
		assert.ErrorIs(t, err, ErrModelMismatch)

		_, err = svc.SelectModel(ctx, id, "ipad-air")
		assert.ErrorIs(t, err, ErrModelMismatch)
	})

	_, err = svc.SelectModel(ctx, id, "iphone-14")
	require.NoError(t, err)

	t.Run("repairs must be non-empty and on the menu", func(t *testing.T) {
		_, err := svc.SetRepairs(ctx, id, nil)
		assert.ErrorIs(t, err, ErrNoRepairs)

		_, err = svc.SetRepairs(ctx, id, []string{"hdmi"})
		assert.ErrorIs(t, err, ErrUnknownRepair)
	})

	t.Run("duplicate repair ids collapse", func(t *testing.T) {
		session, err := svc.SetRepairs(ctx, id, []string{"battery", "battery", "screen-org"})
		require.NoError(t, err)
		require.Len(t, session.Repairs, 2)
		assert.Equal(t, 338.0, session.TotalPrice())
	})

	t.Run("schedule rejects closed or past days", func(t *testing.T) {
		_, err := svc.Schedule(ctx, id, "2026-09-06", "10:00", contact) // Sunday
		assert.ErrorIs(t, err, ErrDayNotBookable)

		_, err = svc.Schedule(ctx, id, "2026-08-31", "13:00", contact) // yesterday
		assert.ErrorIs(t, err, ErrDayNotBookable)
	})

	t.Run("schedule rejects slots the calculator does not produce", func(t *testing.T) {
		_, err := svc.Schedule(ctx, id, "2026-09-04", "13:00", contact) // Friday lunch
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		_, err = svc.Schedule(ctx, id, "2026-09-04", "14:15", contact)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("schedule requires full contact details", func(t *testing.T) {
		_, err := svc.Schedule(ctx, id, "2026-09-04", "14:00", models.ContactDetails{Name: "Jan"})
		assert.ErrorIs(t, err, ErrMissingContact)
	})

	session, err = svc.Schedule(ctx, id, "2026-09-04", "14:00", contact)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-04", session.Date)
	assert.Equal(t, "14:00", session.Time)
}

func TestBackRetainsSelections(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, models.DevicePhone)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.SelectBrand(ctx, id, "samsung")
	require.NoError(t, err)
	_, err = svc.SelectModel(ctx, id, "s24-ultra")
	require.NoError(t, err)
	_, err = svc.SetRepairs(ctx, id, []string{"screen-hq"})
	require.NoError(t, err)

	session, err = svc.Back(ctx, id, models.StepBrand)
	require.NoError(t, err)
	assert.Equal(t, models.StepBrand, session.Step)
	require.NotNil(t, session.Model)
	assert.Equal(t, "s24-ultra", session.Model.ID)
	assert.Len(t, session.Repairs, 1)

	t.Run("cannot go forward or out of range", func(t *testing.T) {
		_, err := svc.Back(ctx, id, models.StepSchedule)
		assert.ErrorIs(t, err, ErrInvalidStep)

		_, err = svc.Back(ctx, id, 0)
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestConfirm(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, models.DevicePhone)
	require.NoError(t, err)
	id := session.SessionID

	t.Run("rejects an incomplete wizard", func(t *testing.T) {
		_, err := svc.Confirm(ctx, id)
		assert.ErrorIs(t, err, ErrNotReady)
	})

	_, err = svc.SelectBrand(ctx, id, "apple")
	require.NoError(t, err)
	_, err = svc.SelectModel(ctx, id, "iphone-13")
	require.NoError(t, err)
	_, err = svc.SetRepairs(ctx, id, []string{"battery", "water-damage"})
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, id, "2026-09-05", "10:30", contact)
	require.NoError(t, err)

	receipt, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Apple", receipt.Brand)
	assert.Equal(t, "iPhone 13", receipt.Model)
	assert.Equal(t, "2026-09-05", receipt.Date)
	assert.Equal(t, "10:30", receipt.Time)
	assert.Equal(t, 138.0, receipt.TotalPrice)

	// The session is discarded on completion.
	_, err = svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelSession(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(ctx, session.SessionID))
	_, err = svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
