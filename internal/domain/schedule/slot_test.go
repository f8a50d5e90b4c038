package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validInput() CreateSlotsInput {
	return CreateSlotsInput{
		DoctorID:            1,
		FromDate:            date(2025, 1, 10),
		ToDate:              date(2025, 1, 12),
		StartTime:           "09:00",
		EndTime:             "17:00",
		ConsultationFee:     500,
		AppointmentDuration: 15,
		MaxAppointments:     10,
		AllowSameDayBooking: false,
	}
}

func TestParseHM(t *testing.T) {
	min, err := ParseHM("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, min)

	_, err = ParseHM("25:00")
	assert.Error(t, err)

	_, err = ParseHM("0900")
	assert.Error(t, err)
}

func TestFormatHM(t *testing.T) {
	assert.Equal(t, "09:00", FormatHM(540))
	assert.Equal(t, "09:05", FormatHM(545))
	assert.Equal(t, "00:00", FormatHM(0))
	assert.Equal(t, "23:45", FormatHM(1425))
}

func TestValidate_OK(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, validInput().Validate(now))
}

func TestValidate_MissingDates(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	in := validInput()
	in.FromDate = time.Time{}
	err := in.Validate(now)
	assert.True(t, httperr.IsBusiness(err, "missing_dates"))
}

func TestValidate_TooFarAhead(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	in := validInput()
	in.ToDate = date(2025, 3, 3) // 61 days out
	err := in.Validate(now)
	assert.True(t, httperr.IsBusiness(err, "too_far_ahead"))

	// exactly 60 days is fine
	in.ToDate = date(2025, 3, 2)
	assert.NoError(t, in.Validate(now))
}

func TestValidate_ReversedRange(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	in := validInput()
	in.FromDate = date(2025, 1, 12)
	in.ToDate = date(2025, 1, 10)
	err := in.Validate(now)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
}

func TestValidate_AdvanceNotice(t *testing.T) {
	now := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)

	// first start 2025-01-10 09:00 is less than 48h after 2025-01-09 00:00 + 48h
	in := validInput()
	in.FromDate = date(2025, 1, 10)
	err := in.Validate(now)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))

	// same range is fine when same-day booking is allowed
	in.AllowSameDayBooking = true
	assert.NoError(t, in.Validate(now))
}

func TestValidate_TimeWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	in := validInput()
	in.StartTime = "17:00"
	in.EndTime = "09:00"
	err := in.Validate(now)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_window"))
}

func TestValidate_WindowTooShort(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	in := validInput()
	in.StartTime = "09:00"
	in.EndTime = "09:45"
	in.AppointmentDuration = 15
	in.MaxAppointments = 4 // needs 60 min, only 45 available
	err := in.Validate(now)
	require.True(t, httperr.IsBusiness(err, "window_too_short"))

	be, _ := httperr.AsBusiness(err)
	assert.Contains(t, be.Message, "45 min")
	assert.Contains(t, be.Message, "60 minutes")

	// exact fit passes
	in.MaxAppointments = 3
	assert.NoError(t, in.Validate(now))
}

func TestDays_InclusiveRange(t *testing.T) {
	in := validInput()
	days := in.Days()

	require.Len(t, days, 3)
	assert.Equal(t, date(2025, 1, 10), days[0])
	assert.Equal(t, date(2025, 1, 11), days[1])
	assert.Equal(t, date(2025, 1, 12), days[2])
}

func TestDays_SingleDay(t *testing.T) {
	in := validInput()
	in.ToDate = in.FromDate
	assert.Len(t, in.Days(), 1)
}
