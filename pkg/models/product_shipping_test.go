package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func baseProductShipping() ProductShipping {
	return ProductShipping{
		Standard: map[ShippingZoneKey]ZoneSelection{
			ZoneDomestic: {Fee: 4.5, Available: true},
			ZoneRegional: {Fee: 9, Available: true},
		},
		SameDay:         &SameDaySelection{Fee: 12, Available: true},
		MeasurementUnit: MeasurementUnitCentimeter,
		Dimensions:      Dimensions{Length: 30, Width: 20, Height: 10},
		Weight:          1.2,
	}
}

func TestParseMeasurementUnit(t *testing.T) {
	require.Equal(t, MeasurementUnitInch, ParseMeasurementUnit("inch"))
	require.Equal(t, MeasurementUnitInch, ParseMeasurementUnit("Inch"))
	require.Equal(t, MeasurementUnitCentimeter, ParseMeasurementUnit("centimeter"))
	require.Equal(t, MeasurementUnitCentimeter, ParseMeasurementUnit("furlong"))
	require.Equal(t, MeasurementUnitCentimeter, ParseMeasurementUnit(""))
}

func TestSelectableShippingOptions(t *testing.T) {
	cfg := baseShippingConfig()
	options := SelectableShippingOptions(&cfg)

	require.NotNil(t, options.SameDay)
	require.Equal(t, 12.0, options.SameDay.FeeDefault)

	require.Equal(t, []ZoneOption{
		{Zone: ZoneDomestic, FeeDefault: 4.5},
		{Zone: ZoneRegional, FeeDefault: 9},
	}, options.Standard)
	require.Equal(t, []ZoneOption{
		{Zone: ZoneDomestic, FeeDefault: 8},
		{Zone: ZoneRegional, FeeDefault: 15},
	}, options.Express)
}

func TestSelectableShippingOptionsShrinkWithConfig(t *testing.T) {
	cfg := baseShippingConfig()
	full := SelectableShippingOptions(&cfg)

	// Disabling a zone only removes options, it never adds any.
	zone := cfg.Zones[ZoneRegional]
	zone.Available = false
	cfg.Zones[ZoneRegional] = zone
	restricted := SelectableShippingOptions(&cfg)

	require.Less(t, len(restricted.Standard), len(full.Standard))
	require.Equal(t, []ZoneOption{{Zone: ZoneDomestic, FeeDefault: 4.5}}, restricted.Standard)
	require.Equal(t, []ZoneOption{{Zone: ZoneDomestic, FeeDefault: 8}}, restricted.Express)

	cfg.SameDay.Available = false
	cfg.Express.Available = false
	restricted = SelectableShippingOptions(&cfg)
	require.Nil(t, restricted.SameDay)
	require.Empty(t, restricted.Express)
}

func TestSelectableShippingOptionsEmptyConfig(t *testing.T) {
	cfg := DefaultShippingConfig()
	options := SelectableShippingOptions(&cfg)

	require.Nil(t, options.SameDay)
	require.NotNil(t, options.Standard)
	require.NotNil(t, options.Express)
	require.Empty(t, options.Standard)
	require.Empty(t, options.Express)
}

func TestApplyFeeOverride(t *testing.T) {
	cfg := baseShippingConfig()
	ps := baseProductShipping()

	require.NoError(t, ps.ApplyFeeOverride(&cfg, MethodStandard, ZoneDomestic, 2.5))
	require.Equal(t, 2.5, ps.Standard[ZoneDomestic].Fee)

	// Other entries keep their fees.
	require.Equal(t, 9.0, ps.Standard[ZoneRegional].Fee)
	require.Equal(t, 12.0, ps.SameDay.Fee)
}

func TestApplyFeeOverrideSeedsUnselectedEntry(t *testing.T) {
	cfg := baseShippingConfig()
	ps := ProductShipping{}

	require.NoError(t, ps.ApplyFeeOverride(&cfg, MethodExpress, ZoneRegional, 20))
	require.Equal(t, ZoneSelection{Fee: 20, Available: true}, ps.Express[ZoneRegional])

	require.Nil(t, ps.SameDay)
	require.NoError(t, ps.ApplyFeeOverride(&cfg, MethodSameDay, "", 6))
	require.Equal(t, &SameDaySelection{Fee: 6, Available: true}, ps.SameDay)
}

func TestApplyFeeOverrideRejectsUnavailablePairs(t *testing.T) {
	cfg := baseShippingConfig()
	ps := baseProductShipping()

	// Zone never enabled on the brand configuration.
	require.Error(t, ps.ApplyFeeOverride(&cfg, MethodStandard, ZoneGlobal, 3))

	// Method switched off entirely.
	cfg.Express.Available = false
	require.Error(t, ps.ApplyFeeOverride(&cfg, MethodExpress, ZoneDomestic, 3))

	cfg.SameDay.Available = false
	require.Error(t, ps.ApplyFeeOverride(&cfg, MethodSameDay, "", 3))

	require.Error(t, ps.ApplyFeeOverride(&cfg, "carrier_pigeon", ZoneDomestic, 3))

	// Failed overrides leave the selection untouched.
	require.Equal(t, baseProductShipping(), ps)
}

func TestToggleMethodOnSeedsAvailableZones(t *testing.T) {
	cfg := baseShippingConfig()
	ps := ProductShipping{}

	require.NoError(t, ps.ToggleMethod(&cfg, MethodStandard))
	require.Equal(t, map[ShippingZoneKey]ZoneSelection{
		ZoneDomestic: {Fee: 4.5, Available: true},
		ZoneRegional: {Fee: 9, Available: true},
	}, ps.Standard)

	require.NoError(t, ps.ToggleMethod(&cfg, MethodSameDay))
	require.Equal(t, &SameDaySelection{Fee: 12, Available: true}, ps.SameDay)
}

func TestToggleMethodOffRemovesAllEntries(t *testing.T) {
	cfg := baseShippingConfig()
	ps := baseProductShipping()

	require.NoError(t, ps.ToggleMethod(&cfg, MethodStandard))
	require.Empty(t, ps.Standard)

	require.NoError(t, ps.ToggleMethod(&cfg, MethodSameDay))
	require.Nil(t, ps.SameDay)
}

func TestToggleMethodRoundTrip(t *testing.T) {
	cfg := baseShippingConfig()
	ps := ProductShipping{}

	require.NoError(t, ps.ToggleMethod(&cfg, MethodExpress))
	seeded := map[ShippingZoneKey]ZoneSelection{}
	for zone, selection := range ps.Express {
		seeded[zone] = selection
	}

	require.NoError(t, ps.ToggleMethod(&cfg, MethodExpress))
	require.Empty(t, ps.Express)

	require.NoError(t, ps.ToggleMethod(&cfg, MethodExpress))
	require.Equal(t, seeded, ps.Express)
}

func TestToggleMethodOnRequiresAvailability(t *testing.T) {
	cfg := baseShippingConfig()
	cfg.Standard.Available = false
	cfg.SameDay.Available = false

	ps := ProductShipping{}
	require.Error(t, ps.ToggleMethod(&cfg, MethodStandard))
	require.Error(t, ps.ToggleMethod(&cfg, MethodSameDay))
	require.Error(t, ps.ToggleMethod(&cfg, "drone"))
}

func TestProductShippingValidate(t *testing.T) {
	cfg := baseShippingConfig()
	ps := baseProductShipping()

	require.True(t, ps.Validate(&cfg))
}

func TestProductShippingValidateRequiresSelection(t *testing.T) {
	cfg := baseShippingConfig()
	ps := ProductShipping{
		MeasurementUnit: MeasurementUnitInch,
		Dimensions:      Dimensions{Length: 1, Width: 1, Height: 1},
		Weight:          1,
	}

	require.False(t, ps.Validate(&cfg))
}

func TestProductShippingValidateAgainstChangedConfig(t *testing.T) {
	cfg := baseShippingConfig()
	ps := baseProductShipping()
	require.True(t, ps.Validate(&cfg))

	// Brand disables a zone the product still references.
	zone := cfg.Zones[ZoneRegional]
	zone.Available = false
	cfg.Zones[ZoneRegional] = zone
	require.False(t, ps.Validate(&cfg))

	// Dropping the stale entry makes the selection valid again.
	delete(ps.Standard, ZoneRegional)
	require.True(t, ps.Validate(&cfg))

	// Brand disables a method the product still references.
	cfg.SameDay.Available = false
	require.False(t, ps.Validate(&cfg))

	ps.SameDay = nil
	require.True(t, ps.Validate(&cfg))
}

func TestProductShippingRequestToSelection(t *testing.T) {
	req := ProductShippingRequest{
		Standard:        map[ShippingZoneKey]ZoneSelection{ZoneDomestic: {Fee: 3, Available: true}},
		SameDay:         &SameDaySelection{Fee: 10, Available: true},
		MeasurementUnit: MeasurementUnitInch,
		Dimensions:      Dimensions{Length: 12, Width: 8, Height: 4},
		Weight:          0.8,
	}

	productID := primitive.NewObjectID()
	selection := req.ToSelection(productID)

	require.Equal(t, productID, selection.ProductID)
	require.Equal(t, req.Standard, selection.Standard)
	require.Equal(t, req.SameDay, selection.SameDay)
	require.Equal(t, req.Dimensions, selection.Dimensions)
	require.Equal(t, req.Weight, selection.Weight)
	require.True(t, selection.ID.IsZero())
}
