package update_business_config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmaniatis/v-tee/pkg/types"
)

func TestToDomainPricing_PeakDisabledEmptyWindow(t *testing.T) {
	// Выключенный пик с пустыми полями окна - валидная секция
	req := &PricingRequest{
		WeekdayPrice:           45,
		WeekendPrice:           60,
		PeakHourPricingEnabled: false,
	}

	pricing, err := req.ToDomainPricing()
	require.NoError(t, err)

	assert.Equal(t, 45.0, pricing.WeekdayPrice)
	assert.Equal(t, 60.0, pricing.WeekendPrice)
	assert.False(t, pricing.PeakHourPricingEnabled)
	assert.Equal(t, types.TimeOfDay(0), pricing.PeakHourStart)
	assert.Equal(t, types.TimeOfDay(0), pricing.PeakHourEnd)
}

func TestToDomainPricing_PeakEnabled(t *testing.T) {
	req := &PricingRequest{
		WeekdayPrice:           45,
		WeekendPrice:           60,
		PeakHourPricingEnabled: true,
		PeakHourStart:          "17:00",
		PeakHourEnd:            "20:00",
		PeakHourAdditionalCost: 10,
	}

	pricing, err := req.ToDomainPricing()
	require.NoError(t, err)

	assert.Equal(t, "17:00", pricing.PeakHourStart.String())
	assert.Equal(t, "20:00", pricing.PeakHourEnd.String())
	assert.Equal(t, 10.0, pricing.PeakHourAdditionalCost)
}

func TestToDomainPricing_PeakEnabledRequiresWindow(t *testing.T) {
	req := &PricingRequest{
		WeekdayPrice:           45,
		PeakHourPricingEnabled: true,
	}

	_, err := req.ToDomainPricing()
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestToDomainPricing_PeakDisabledInvalidWindowRejected(t *testing.T) {
	// Заданные поля окна валидируются даже при выключенном пике
	req := &PricingRequest{
		WeekdayPrice:           45,
		PeakHourPricingEnabled: false,
		PeakHourStart:          "25:00",
		PeakHourEnd:            "26:00",
	}

	_, err := req.ToDomainPricing()
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}
