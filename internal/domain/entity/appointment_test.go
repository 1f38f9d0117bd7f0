package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, status := range AppointmentStatuses {
		parsed, ok := ParseAppointmentStatus(string(status))
		assert.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	for _, raw := range []string{"", "pending", "Scheduled", "CONFIRMED", "noshow"} {
		_, ok := ParseAppointmentStatus(raw)
		assert.False(t, ok, "token %q must not parse", raw)
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentStatusNoShow.Valid())
	assert.False(t, AppointmentStatus("archived").Valid())
}

func TestOneTimeCodeMatches(t *testing.T) {
	expiry := time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC)
	code := &OneTimeCode{Code: "042913", ExpiresAt: expiry}

	assert.True(t, code.Matches("042913", expiry.Add(-time.Minute)))
	// The boundary instant still matches; one tick past it does not.
	assert.True(t, code.Matches("042913", expiry))
	assert.False(t, code.Matches("042913", expiry.Add(time.Nanosecond)))
	assert.False(t, code.Matches("042914", expiry.Add(-time.Minute)))
}

func TestOneTimeCodeIsExpired(t *testing.T) {
	expiry := time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC)
	code := &OneTimeCode{ExpiresAt: expiry}

	assert.False(t, code.IsExpired(expiry))
	assert.True(t, code.IsExpired(expiry.Add(time.Second)))
}
