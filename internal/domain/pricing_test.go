package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmaniatis/v-tee/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	parsed, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return parsed
}

func testPricing() *PricingConfig {
	return &PricingConfig{
		WeekdayPrice:           45,
		WeekendPrice:           60,
		PeakHourPricingEnabled: true,
		PeakHourStart:          types.TimeOfDay(17 * 60), // 17:00
		PeakHourEnd:            types.TimeOfDay(20 * 60), // 20:00
		PeakHourAdditionalCost: 10,
	}
}

func TestCalculatePrice_WeekdayPeak(t *testing.T) {
	// Вторник, 18:00 попадает в пиковое окно: (45 + 10) * 1h = 55.00
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tuesday.Weekday())

	price, err := CalculatePrice(mustTime(t, "18:00"), 60, tuesday, testPricing(), true)
	require.NoError(t, err)
	assert.Equal(t, 55.00, price)
}

func TestCalculatePrice_WeekdayOffPeak(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	price, err := CalculatePrice(mustTime(t, "10:00"), 90, tuesday, testPricing(), true)
	require.NoError(t, err)
	assert.Equal(t, 67.50, price)
}

func TestCalculatePrice_Weekend(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	price, err := CalculatePrice(mustTime(t, "10:00"), 60, saturday, testPricing(), true)
	require.NoError(t, err)
	assert.Equal(t, 60.00, price)

	// Пиковая надбавка действует и в выходные
	price, err = CalculatePrice(mustTime(t, "18:00"), 60, saturday, testPricing(), true)
	require.NoError(t, err)
	assert.Equal(t, 70.00, price)
}

func TestCalculatePrice_PeakEndExclusive(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Ровно в конце окна пиковая надбавка уже не действует
	price, err := CalculatePrice(mustTime(t, "20:00"), 60, tuesday, testPricing(), true)
	require.NoError(t, err)
	assert.Equal(t, 45.00, price)

	// Ровно в начале окна - действует
	price, err = CalculatePrice(mustTime(t, "17:00"), 60, tuesday, testPricing(), true)
	require.NoError(t, err)
	assert.Equal(t, 55.00, price)
}

func TestCalculatePrice_DayPeakDisabled(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Пиковые часы выключены для этого дня недели
	price, err := CalculatePrice(mustTime(t, "18:00"), 60, tuesday, testPricing(), false)
	require.NoError(t, err)
	assert.Equal(t, 45.00, price)
}

func TestCalculatePrice_Rounding(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	pricing := testPricing()
	pricing.WeekdayPrice = 19.99

	// 19.99 * 1.5 = 29.985, округляется вверх до 29.99
	price, err := CalculatePrice(mustTime(t, "10:00"), 90, tuesday, pricing, true)
	require.NoError(t, err)
	assert.Equal(t, 29.99, price)
}

func TestCalculatePrice_InvalidParameters(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := CalculatePrice(mustTime(t, "10:00"), 0, tuesday, testPricing(), true)
	assert.ErrorIs(t, err, ErrInvalidBookingParameters)

	_, err = CalculatePrice(mustTime(t, "10:00"), -30, tuesday, testPricing(), true)
	assert.ErrorIs(t, err, ErrInvalidBookingParameters)

	_, err = CalculatePrice(types.EndOfDay, 60, tuesday, testPricing(), true)
	assert.ErrorIs(t, err, ErrInvalidBookingParameters)
}

func TestIsPeakTime_RequiresBothFlags(t *testing.T) {
	pricing := testPricing()

	assert.True(t, pricing.IsPeakTime(mustTime(t, "18:00"), true))
	assert.False(t, pricing.IsPeakTime(mustTime(t, "18:00"), false))

	pricing.PeakHourPricingEnabled = false
	assert.False(t, pricing.IsPeakTime(mustTime(t, "18:00"), true))
}

func TestRatePerHour(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	pricing := testPricing()

	assert.Equal(t, 45.0, pricing.RatePerHour(mustTime(t, "10:00"), tuesday, true))
	assert.Equal(t, 55.0, pricing.RatePerHour(mustTime(t, "18:00"), tuesday, true))
	assert.Equal(t, 60.0, pricing.RatePerHour(mustTime(t, "10:00"), sunday, true))
}
