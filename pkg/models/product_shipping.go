package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MeasurementUnit string

const (
	MeasurementUnitInch       MeasurementUnit = "Inch"
	MeasurementUnitCentimeter MeasurementUnit = "Centimeter"
)

// ParseMeasurementUnit converts a string measurement unit to the enum,
// defaulting to centimeters for unknown input.
func ParseMeasurementUnit(unit string) MeasurementUnit {
	switch strings.ToLower(unit) {
	case "inch":
		return MeasurementUnitInch
	case "centimeter":
		return MeasurementUnitCentimeter
	default:
		return MeasurementUnitCentimeter
	}
}

type Dimensions struct {
	Length float64 `bson:"length" json:"length" validate:"required,gt=0"`
	Width  float64 `bson:"width" json:"width" validate:"required,gt=0"`
	Height float64 `bson:"height" json:"height" validate:"required,gt=0"`
}

// ZoneSelection is one selected method+zone entry on a product, carrying the
// product-level fee which may override the brand's global fee either way.
type ZoneSelection struct {
	Fee       float64 `bson:"fee" json:"fee"`
	Available bool    `bson:"available" json:"available"`
}

type SameDaySelection struct {
	Fee       float64 `bson:"fee" json:"fee"`
	Available bool    `bson:"available" json:"available"`
}

// ProductShipping is a product's selected subset of the brand's shipping
// configuration. Keys present under Standard/Express must correspond to
// method+zone pairs that are available in the brand's current configuration;
// stale keys make the selection invalid on the next validation pass.
type ProductShipping struct {
	Standard        map[ShippingZoneKey]ZoneSelection `bson:"standard,omitempty" json:"standard,omitempty"`
	Express         map[ShippingZoneKey]ZoneSelection `bson:"express,omitempty" json:"express,omitempty"`
	SameDay         *SameDaySelection                 `bson:"same_day,omitempty" json:"sameDay,omitempty"`
	MeasurementUnit MeasurementUnit                   `bson:"measurement_unit" json:"measurementUnit" validate:"required,oneof=Inch Centimeter"`
	Dimensions      Dimensions                        `bson:"dimensions" json:"dimensions" validate:"required"`
	Weight          float64                           `bson:"weight" json:"weight" validate:"required,gt=0"`
	CreatedAt       primitive.DateTime                `bson:"created_at" json:"createdAt"`
	ModifiedAt      primitive.DateTime                `bson:"modified_at" json:"modifiedAt"`
	ID              primitive.ObjectID                `bson:"_id" json:"_id" validate:"omitempty"`
	ProductID       primitive.ObjectID                `bson:"product_id" json:"productId"`
}

// ProductShippingRequest is the shipping step a brand submits once per
// product.
type ProductShippingRequest struct {
	Standard        map[ShippingZoneKey]ZoneSelection `json:"standard,omitempty"`
	Express         map[ShippingZoneKey]ZoneSelection `json:"express,omitempty"`
	SameDay         *SameDaySelection                 `json:"sameDay,omitempty"`
	MeasurementUnit MeasurementUnit                   `json:"measurementUnit" validate:"required,oneof=Inch Centimeter"`
	Dimensions      Dimensions                        `json:"dimensions" validate:"required"`
	Weight          float64                           `json:"weight" validate:"required,gt=0"`
}

// ToSelection builds the persisted selection for a product from the request.
func (req *ProductShippingRequest) ToSelection(productID primitive.ObjectID) ProductShipping {
	return ProductShipping{
		ProductID:       productID,
		Weight:          req.Weight,
		Dimensions:      req.Dimensions,
		MeasurementUnit: req.MeasurementUnit,
		SameDay:         req.SameDay,
		Standard:        req.Standard,
		Express:         req.Express,
	}
}

// ZoneOption is one selectable method+zone pair with its default fee taken
// from the brand configuration.
type ZoneOption struct {
	Zone       ShippingZoneKey `json:"zone"`
	FeeDefault float64         `json:"feeDefault"`
}

type SameDayOption struct {
	FeeDefault float64 `json:"feeDefault"`
}

// ShippingOptions is the subset of a brand's configuration a product may
// select from.
type ShippingOptions struct {
	SameDay  *SameDayOption `json:"sameDay,omitempty"`
	Standard []ZoneOption   `json:"standard"`
	Express  []ZoneOption   `json:"express"`
}

// SelectableShippingOptions filters a brand configuration down to the
// method+zone pairs where both the method and the zone are available. Zones
// appear in AllShippingZones order.
func SelectableShippingOptions(cfg *ShippingConfig) ShippingOptions {
	options := ShippingOptions{
		Standard: []ZoneOption{},
		Express:  []ZoneOption{},
	}

	if cfg.SameDay.Available {
		options.SameDay = &SameDayOption{FeeDefault: cfg.SameDay.Fee}
	}

	options.Standard = selectableZones(cfg, cfg.Standard)
	options.Express = selectableZones(cfg, cfg.Express)

	return options
}

func selectableZones(cfg *ShippingConfig, mc MethodConfig) []ZoneOption {
	options := []ZoneOption{}
	if !mc.Available {
		return options
	}

	for _, zone := range AllShippingZones() {
		if !cfg.Zone(zone).Available {
			continue
		}
		delivery, ok := mc.EstimatedDelivery[zone]
		if !ok {
			continue
		}
		options = append(options, ZoneOption{Zone: zone, FeeDefault: delivery.Fee})
	}

	return options
}

// ApplyFeeOverride sets the fee for one selected entry, seeding the entry
// from the brand configuration when it is not selected yet. Entries other
// than the targeted one are never touched. A method+zone pair that is not
// selectable under cfg is a programmer error and fails loudly.
func (ps *ProductShipping) ApplyFeeOverride(cfg *ShippingConfig, method ShippingMethodKey, zone ShippingZoneKey, fee float64) error {
	switch method {
	case MethodSameDay:
		if !cfg.SameDay.Available {
			return fmt.Errorf("same day delivery is not available on the brand configuration")
		}
		if ps.SameDay == nil {
			ps.SameDay = &SameDaySelection{Available: true}
		}
		ps.SameDay.Fee = fee
		return nil

	case MethodStandard, MethodExpress:
		mc, err := cfg.Method(method)
		if err != nil {
			return err
		}
		if !mc.Available || !cfg.Zone(zone).Available {
			return fmt.Errorf("%s shipping to the %s zone is not available on the brand configuration", method, zone)
		}
		if _, ok := mc.EstimatedDelivery[zone]; !ok {
			return fmt.Errorf("%s shipping has no delivery details for the %s zone", method, zone)
		}

		selections := ps.methodSelections(method)
		selection, ok := selections[zone]
		if !ok {
			selection = ZoneSelection{Available: true}
		}
		selection.Fee = fee
		selections[zone] = selection
		return nil
	}

	return fmt.Errorf("invalid shipping method: %v", method)
}

// ToggleMethod adds or removes one method's entries in bulk. Adding seeds
// every currently-available zone with the brand's default fee; removing
// deletes all of the method's entries.
func (ps *ProductShipping) ToggleMethod(cfg *ShippingConfig, method ShippingMethodKey) error {
	switch method {
	case MethodSameDay:
		if ps.SameDay != nil {
			ps.SameDay = nil
			return nil
		}
		if !cfg.SameDay.Available {
			return fmt.Errorf("same day delivery is not available on the brand configuration")
		}
		ps.SameDay = &SameDaySelection{Available: true, Fee: cfg.SameDay.Fee}
		return nil

	case MethodStandard, MethodExpress:
		if ps.hasMethodSelections(method) {
			ps.clearMethodSelections(method)
			return nil
		}

		mc, err := cfg.Method(method)
		if err != nil {
			return err
		}
		if !mc.Available {
			return fmt.Errorf("%s shipping is not available on the brand configuration", method)
		}

		selections := ps.methodSelections(method)
		for _, option := range selectableZones(cfg, mc) {
			selections[option.Zone] = ZoneSelection{Available: true, Fee: option.FeeDefault}
		}
		return nil
	}

	return fmt.Errorf("invalid shipping method: %v", method)
}

// Validate reports whether the selection is complete and still consistent
// with the brand's current configuration. A zone disabled after the product
// was created invalidates the selection rather than being silently kept.
func (ps *ProductShipping) Validate(cfg *ShippingConfig) bool {
	selected := ps.SameDay != nil || len(ps.Standard) > 0 || len(ps.Express) > 0
	if !selected {
		return false
	}

	if ps.SameDay != nil && !cfg.SameDay.Available {
		return false
	}
	if len(ps.Standard) > 0 && !cfg.Standard.Available {
		return false
	}
	if len(ps.Express) > 0 && !cfg.Express.Available {
		return false
	}

	for zone := range ps.Standard {
		if !cfg.Zone(zone).Available {
			return false
		}
	}
	for zone := range ps.Express {
		if !cfg.Zone(zone).Available {
			return false
		}
	}

	return true
}

func (ps *ProductShipping) methodSelections(method ShippingMethodKey) map[ShippingZoneKey]ZoneSelection {
	switch method {
	case MethodStandard:
		if ps.Standard == nil {
			ps.Standard = map[ShippingZoneKey]ZoneSelection{}
		}
		return ps.Standard
	case MethodExpress:
		if ps.Express == nil {
			ps.Express = map[ShippingZoneKey]ZoneSelection{}
		}
		return ps.Express
	}

	return nil
}

func (ps *ProductShipping) hasMethodSelections(method ShippingMethodKey) bool {
	switch method {
	case MethodStandard:
		return len(ps.Standard) > 0
	case MethodExpress:
		return len(ps.Express) > 0
	}

	return false
}

func (ps *ProductShipping) clearMethodSelections(method ShippingMethodKey) {
	switch method {
	case MethodStandard:
		ps.Standard = nil
	case MethodExpress:
		ps.Express = nil
	}
}
