package schedule_test

import (
	"testing"

	"github.com/mauv0809/league-scheduler/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotTime(t *testing.T) {
	assert.Equal(t, "4:15 PM", schedule.SlotTime(0, 16, 15, 45))
	assert.Equal(t, "5:00 PM", schedule.SlotTime(1, 16, 15, 45))
	assert.Equal(t, "5:45 PM", schedule.SlotTime(2, 16, 15, 45))

	t.Run("morning and noon boundaries", func(t *testing.T) {
		assert.Equal(t, "9:00 AM", schedule.SlotTime(0, 9, 0, 30))
		assert.Equal(t, "12:00 PM", schedule.SlotTime(6, 9, 0, 30))
		assert.Equal(t, "12:30 AM", schedule.SlotTime(1, 0, 0, 30))
	})

	t.Run("wraps past midnight", func(t *testing.T) {
		assert.Equal(t, "12:15 AM", schedule.SlotTime(1, 23, 30, 45))
	})
}

func TestParseStartTime(t *testing.T) {
	h, m, err := schedule.ParseStartTime("19:00")
	require.NoError(t, err)
	assert.Equal(t, 19, h)
	assert.Equal(t, 0, m)

	h, m, err = schedule.ParseStartTime(" 16:15 ")
	require.NoError(t, err)
	assert.Equal(t, 16, h)
	assert.Equal(t, 15, m)

	for _, bad := range []string{"", "19", "25:00", "19:60", "19:xx"} {
		_, _, err := schedule.ParseStartTime(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}
