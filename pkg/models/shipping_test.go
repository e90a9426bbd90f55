package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// baseShippingConfig returns a configuration with domestic and regional
// zones enabled, standard and express covering both, and same day on.
func baseShippingConfig() ShippingConfig {
	cfg := DefaultShippingConfig()

	cfg.HandlingTime = HandlingTime{From: 1, To: 3}
	cfg.Zones[ZoneDomestic] = ShippingZone{Available: true, ExcludedCities: []string{"Juba"}}
	cfg.Zones[ZoneRegional] = ShippingZone{Available: true, ExcludedCountries: []string{"Chad", "Mali"}}

	cfg.SameDay = SameDayDelivery{
		CutOffTime:       "14:00",
		TimeZone:         "Africa/Lagos",
		ApplicableCities: []string{"Lagos", "Abuja"},
		Fee:              12,
		Available:        true,
	}
	cfg.Standard = MethodConfig{
		Available: true,
		EstimatedDelivery: map[ShippingZoneKey]ZoneDelivery{
			ZoneDomestic: {From: 2, To: 5, Fee: 4.5},
			ZoneRegional: {From: 5, To: 10, Fee: 9},
		},
	}
	cfg.Express = MethodConfig{
		Available: true,
		EstimatedDelivery: map[ShippingZoneKey]ZoneDelivery{
			ZoneDomestic: {From: 1, To: 2, Fee: 8},
			ZoneRegional: {From: 2, To: 4, Fee: 15},
		},
	}
	cfg.FreeShipping = FreeShipping{
		ApplicableMethods: []ShippingMethodKey{MethodStandard},
		Threshold:         100,
		Available:         true,
	}

	return cfg
}

func TestParseShippingZoneKey(t *testing.T) {
	for _, zone := range AllShippingZones() {
		parsed, err := ParseShippingZoneKey(string(zone))
		require.NoError(t, err)
		require.Equal(t, zone, parsed)
	}

	_, err := ParseShippingZoneKey("continental")
	require.Error(t, err)

	_, err = ParseShippingZoneKey("")
	require.Error(t, err)
}

func TestParseShippingMethodKey(t *testing.T) {
	for _, method := range AllShippingMethods() {
		parsed, err := ParseShippingMethodKey(string(method))
		require.NoError(t, err)
		require.Equal(t, method, parsed)
	}

	_, err := ParseShippingMethodKey("overnight")
	require.Error(t, err)
}

func TestDefaultShippingConfig(t *testing.T) {
	cfg := DefaultShippingConfig()

	require.Len(t, cfg.Zones, len(AllShippingZones()))
	for _, zone := range AllShippingZones() {
		require.False(t, cfg.Zone(zone).Available)
	}
	require.False(t, cfg.SameDay.Available)
	require.False(t, cfg.Standard.Available)
	require.False(t, cfg.Express.Available)
	require.False(t, cfg.FreeShipping.Available)

	// A fresh configuration is not savable as-is.
	require.NotEmpty(t, ValidateShippingConfig(&cfg))
}

func TestMethodLookup(t *testing.T) {
	cfg := baseShippingConfig()

	standard, err := cfg.Method(MethodStandard)
	require.NoError(t, err)
	require.True(t, standard.Available)

	express, err := cfg.Method(MethodExpress)
	require.NoError(t, err)
	require.True(t, express.Available)

	_, err = cfg.Method(MethodSameDay)
	require.Error(t, err)
}

func TestZoneMissingEntryIsDisabled(t *testing.T) {
	cfg := ShippingConfig{}
	require.False(t, cfg.Zone(ZoneDomestic).Available)

	cfg.Zones = map[ShippingZoneKey]ShippingZone{}
	require.False(t, cfg.Zone(ZoneGlobal).Available)
}

func TestFreeShippingExcludedCountriesDerived(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.Zones[ZoneGlobal] = ShippingZone{Available: true, ExcludedCountries: []string{"Mali", "Yemen"}}

	// Union of every zone's exclusions, deduplicated and sorted.
	require.Equal(t, []string{"Chad", "Mali", "Yemen"}, cfg.FreeShippingExcludedCountries())

	// Changing a zone's exclusions is reflected immediately, nothing is stored.
	zone := cfg.Zones[ZoneRegional]
	zone.ExcludedCountries = nil
	cfg.Zones[ZoneRegional] = zone
	require.Equal(t, []string{"Mali", "Yemen"}, cfg.FreeShippingExcludedCountries())
}

func TestFreeShippingExcludedCountriesEmpty(t *testing.T) {
	cfg := DefaultShippingConfig()
	require.Empty(t, cfg.FreeShippingExcludedCountries())
}

func TestConfigEqualIgnoresListOrder(t *testing.T) {
	a := baseShippingConfig()
	b := baseShippingConfig()

	b.Zones[ZoneRegional] = ShippingZone{Available: true, ExcludedCountries: []string{"Mali", "Chad"}}
	b.SameDay.ApplicableCities = []string{"Abuja", "Lagos"}

	require.True(t, a.Equal(&b))
	require.True(t, b.Equal(&a))
}

func TestConfigEqualDetectsChanges(t *testing.T) {
	a := baseShippingConfig()

	b := baseShippingConfig()
	b.HandlingTime.To = 4
	require.False(t, a.Equal(&b))

	c := baseShippingConfig()
	zone := c.Zones[ZoneRegional]
	zone.ExcludedCountries = append(zone.ExcludedCountries, "Libya")
	c.Zones[ZoneRegional] = zone
	require.False(t, a.Equal(&c))

	d := baseShippingConfig()
	delivery := d.Standard.EstimatedDelivery[ZoneDomestic]
	delivery.Fee = 5
	d.Standard.EstimatedDelivery[ZoneDomestic] = delivery
	require.False(t, a.Equal(&d))

	e := baseShippingConfig()
	e.FreeShipping.Threshold = 50
	require.False(t, a.Equal(&e))
}

func TestConfigEqualIgnoresIdentityFields(t *testing.T) {
	a := baseShippingConfig()
	b := baseShippingConfig()
	b.ID = a.ID
	b.CreatedAt = 12345
	b.ModifiedAt = 67890

	// Timestamps and ids do not make two configurations different.
	require.True(t, a.Equal(&b))
}

func TestConfigEqualNil(t *testing.T) {
	cfg := baseShippingConfig()

	var absent *ShippingConfig
	require.False(t, cfg.Equal(absent))
	require.True(t, absent.Equal(nil))
}
