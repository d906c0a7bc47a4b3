package scheduling

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference week: 2026-08-30 is a Sunday.
const (
	sunday    = "2026-08-30"
	monday    = "2026-08-31"
	tuesday   = "2026-09-01"
	wednesday = "2026-09-02"
	thursday  = "2026-09-03"
	friday    = "2026-09-04"
	saturday  = "2026-09-05"
)

func TestSlotsSundayClosed(t *testing.T) {
	assert.Empty(t, Slots(sunday))
}

func TestSlotsMonday(t *testing.T) {
	want := []string{
		"13:00", "13:30", "14:00", "14:30", "15:00",
		"15:30", "16:00", "16:30", "17:00", "17:30",
	}
	assert.Equal(t, want, Slots(monday))
}

func TestSlotsFridayLunchExcluded(t *testing.T) {
	slots := Slots(friday)
	require.Len(t, slots, 14)
	assert.NotContains(t, slots, "13:00")
	assert.NotContains(t, slots, "13:30")
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "12:30", slots[5])
	assert.Equal(t, "14:00", slots[6])
	assert.Equal(t, "17:30", slots[13])
}

func TestSlotsWeekdayBounds(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		count int
		first string
		last  string
	}{
		{name: "tuesday", date: tuesday, count: 16, first: "10:00", last: "17:30"},
		{name: "wednesday", date: wednesday, count: 16, first: "10:00", last: "17:30"},
		{name: "thursday", date: thursday, count: 16, first: "10:00", last: "17:30"},
		{name: "saturday", date: saturday, count: 14, first: "10:00", last: "16:30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := Slots(tc.date)
			require.Len(t, slots, tc.count)
			assert.Equal(t, tc.first, slots[0])
			assert.Equal(t, tc.last, slots[len(slots)-1])
		})
	}
}

func TestSlotsAlignedAndWithinHours(t *testing.T) {
	week := []string{monday, tuesday, wednesday, thursday, friday, saturday}
	for _, date := range week {
		t.Run(date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", date)
			require.NoError(t, err)
			wh := weeklyHours[d.Weekday()]

			for _, slot := range Slots(date) {
				parts := strings.SplitN(slot, ":", 2)
				require.Len(t, parts, 2)
				h, err := strconv.Atoi(parts[0])
				require.NoError(t, err)
				m, err := strconv.Atoi(parts[1])
				require.NoError(t, err)

				minutes := h*60 + m
				assert.Zero(t, minutes%SlotStepMinutes, "slot %s not on a 30-minute boundary", slot)
				assert.GreaterOrEqual(t, minutes, wh.Start)
				assert.Less(t, minutes, wh.End)
			}
		})
	}
}

func TestSlotsMalformedDate(t *testing.T) {
	assert.Empty(t, Slots(""))
	assert.Empty(t, Slots("not-a-date"))
	assert.Empty(t, Slots("31-08-2026"))
}

func TestHasSlot(t *testing.T) {
	assert.True(t, HasSlot(monday, "13:00"))
	assert.False(t, HasSlot(monday, "12:30"))
	assert.False(t, HasSlot(friday, "13:30"))
	assert.False(t, HasSlot(sunday, "10:00"))
}

func TestDayBookable(t *testing.T) {
	today := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.Local)

	cases := []struct {
		name string
		date string
		want bool
	}{
		{name: "today", date: tuesday, want: true},
		{name: "future weekday", date: friday, want: true},
		{name: "past day", date: monday, want: false},
		{name: "sunday", date: "2026-09-06", want: false},
		{name: "malformed", date: "soon", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DayBookable(tc.date, today))
		})
	}
}
