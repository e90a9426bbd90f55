package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateShippingConfigValid(t *testing.T) {
	cfg := baseShippingConfig()
	require.Empty(t, ValidateShippingConfig(&cfg))
}

func TestValidateShippingConfigIsIdempotent(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.HandlingTime = HandlingTime{From: 5, To: 2}
	delete(cfg.Standard.EstimatedDelivery, ZoneRegional)

	first := ValidateShippingConfig(&cfg)
	second := ValidateShippingConfig(&cfg)

	// Validation never mutates the configuration, so repeated runs agree.
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}

func TestValidateShippingConfigCollectsAllViolations(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.HandlingTime = HandlingTime{From: -2, To: -1}
	cfg.SameDay.Fee = -3
	delete(cfg.Express.EstimatedDelivery, ZoneDomestic)

	violations := ValidateShippingConfig(&cfg)

	// Every broken rule surfaces in one pass, not just the first.
	require.Contains(t, violations, "handling time days must not be negative")
	require.Contains(t, violations, "same day delivery fee must not be negative")
	require.Contains(t, violations, "express shipping is missing delivery details for the domestic zone")
	require.Len(t, violations, 3)
}

func TestValidateRejectsUnknownZoneKeys(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.Zones["mars"] = ShippingZone{Available: true, ExcludedCountries: []string{"X"}}
	cfg.Standard.EstimatedDelivery["mars"] = ZoneDelivery{From: 1, To: 2, Fee: 3}

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, `unknown shipping zone "mars"`)
	require.Contains(t, violations, `standard shipping has delivery details for the unknown zone "mars"`)
	require.Len(t, violations, 2)
}

func TestValidateRejectsUnknownZoneKeysFromWire(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.Zones["mars"] = ShippingZone{Available: true}
	cfg.Express.EstimatedDelivery["pluto"] = ZoneDelivery{From: 1, To: 2, Fee: 3}

	// Map-typed fields accept any string key during JSON binding, so junk
	// keys must still be violations after a decode round trip.
	data, err := json.Marshal(&cfg)
	require.NoError(t, err)

	var fromWire ShippingConfig
	require.NoError(t, json.Unmarshal(data, &fromWire))

	violations := ValidateShippingConfig(&fromWire)
	require.Contains(t, violations, `unknown shipping zone "mars"`)
	require.Contains(t, violations, `express shipping has delivery details for the unknown zone "pluto"`)
}

func TestValidateHandlingTime(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.HandlingTime = HandlingTime{From: 4, To: 2}

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, "handling time 'from' must not exceed 'to'")
}

func TestValidateRequiresMethodAndZone(t *testing.T) {
	cfg := DefaultShippingConfig()

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, "at least one shipping method is required")
	require.Contains(t, violations, "at least one shipping zone is required")
}

func TestValidateSameDayCutOffBlock(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.SameDay.CutOffTime = "25:99"

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, `same day delivery cut-off time "25:99" is not a valid HH:MM time`)

	cfg.SameDay.CutOffTime = "14:00"
	cfg.SameDay.TimeZone = ""
	violations = ValidateShippingConfig(&cfg)
	require.Contains(t, violations, "same day delivery time zone is required when a cut-off time is set")

	// No cut-off block at all is fine.
	cfg.SameDay.CutOffTime = ""
	require.Empty(t, ValidateShippingConfig(&cfg))
}

func TestValidateSameDaySkippedWhenUnavailable(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.SameDay = SameDayDelivery{Fee: -10, CutOffTime: "nonsense"}

	// Disabled methods are not inspected.
	require.Empty(t, ValidateShippingConfig(&cfg))
}

func TestValidateMethodZoneCoverage(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.Zones[ZoneGlobal] = ShippingZone{Available: true}

	violations := ValidateShippingConfig(&cfg)

	// Each available method reports the newly enabled zone separately.
	require.Contains(t, violations, "standard shipping is missing delivery details for the global zone")
	require.Contains(t, violations, "express shipping is missing delivery details for the global zone")
	require.Len(t, violations, 2)
}

func TestValidateMethodZoneWindowAndFee(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.Standard.EstimatedDelivery[ZoneDomestic] = ZoneDelivery{From: 6, To: 2, Fee: -1}

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, "standard shipping delivery window for the domestic zone must satisfy 0 <= from <= to")
	require.Contains(t, violations, "standard shipping fee for the domestic zone must not be negative")
}

func TestValidateMethodIgnoresDisabledZones(t *testing.T) {
	cfg := baseShippingConfig()

	// Garbage under a disabled zone is unreachable and not validated.
	cfg.Standard.EstimatedDelivery[ZoneGlobal] = ZoneDelivery{From: 9, To: 1, Fee: -50}
	require.Empty(t, ValidateShippingConfig(&cfg))
}

func TestValidateFreeShipping(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.FreeShipping.Threshold = -5
	cfg.FreeShipping.ApplicableMethods = nil

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, "free shipping threshold must not be negative")
	require.Contains(t, violations, "free shipping requires at least one applicable method")
}

func TestValidateFreeShippingMethodAvailability(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.Express.Available = false
	cfg.FreeShipping.ApplicableMethods = []ShippingMethodKey{MethodStandard, MethodExpress}

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, "free shipping lists express shipping but express shipping is not available")

	// Express zones are no longer inspected once the method is off.
	require.Len(t, violations, 1)
}

func TestValidateFreeShippingRejectsSameDay(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.FreeShipping.ApplicableMethods = []ShippingMethodKey{MethodSameDay}

	violations := ValidateShippingConfig(&cfg)
	require.Contains(t, violations, `free shipping method "same_day" is not supported, only standard and express apply`)
}

func TestValidateFreeShippingSkippedWhenUnavailable(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.FreeShipping = FreeShipping{Threshold: -100}

	require.Empty(t, ValidateShippingConfig(&cfg))
}
