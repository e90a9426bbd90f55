package models

import (
	"fmt"
	"sort"
	"time"
)

// methodLabels are the human readable names used in violation messages.
var methodLabels = map[ShippingMethodKey]string{
	MethodSameDay:  "same day delivery",
	MethodStandard: "standard shipping",
	MethodExpress:  "express shipping",
}

// ValidateShippingConfig inspects a brand's shipping configuration and
// returns every violation as a human readable message. The list is ordered
// and complete: all rules are evaluated so the brand sees every problem at
// once, and an empty result means the configuration is savable.
func ValidateShippingConfig(cfg *ShippingConfig) []string {
	var violations []string

	violations = append(violations, validateZoneKeys(cfg)...)
	violations = append(violations, validateHandlingTime(cfg.HandlingTime)...)

	if !cfg.SameDay.Available && !cfg.Standard.Available && !cfg.Express.Available {
		violations = append(violations, "at least one shipping method is required")
	}

	anyZone := false
	for _, zone := range AllShippingZones() {
		if cfg.Zone(zone).Available {
			anyZone = true
			break
		}
	}
	if !anyZone {
		violations = append(violations, "at least one shipping zone is required")
	}

	if cfg.SameDay.Available {
		violations = append(violations, validateSameDay(cfg.SameDay)...)
	}
	if cfg.Standard.Available {
		violations = append(violations, validateMethodZones(cfg, MethodStandard, cfg.Standard)...)
	}
	if cfg.Express.Available {
		violations = append(violations, validateMethodZones(cfg, MethodExpress, cfg.Express)...)
	}
	if cfg.FreeShipping.Available {
		violations = append(violations, validateFreeShipping(cfg)...)
	}

	return violations
}

// validateZoneKeys rejects zone map keys outside the closed enum. Bound
// maps accept any string key over JSON, so a typo'd zone has to surface as
// a violation instead of being silently skipped by every later rule.
func validateZoneKeys(cfg *ShippingConfig) []string {
	var violations []string

	for _, zone := range unknownZoneKeys(zoneMapKeys(cfg.Zones)) {
		violations = append(violations, fmt.Sprintf("unknown shipping zone %q", zone))
	}
	for _, zone := range unknownZoneKeys(deliveryMapKeys(cfg.Standard.EstimatedDelivery)) {
		violations = append(violations, fmt.Sprintf("%s has delivery details for the unknown zone %q", methodLabels[MethodStandard], zone))
	}
	for _, zone := range unknownZoneKeys(deliveryMapKeys(cfg.Express.EstimatedDelivery)) {
		violations = append(violations, fmt.Sprintf("%s has delivery details for the unknown zone %q", methodLabels[MethodExpress], zone))
	}

	return violations
}

func zoneMapKeys(zones map[ShippingZoneKey]ShippingZone) []ShippingZoneKey {
	keys := make([]ShippingZoneKey, 0, len(zones))
	for zone := range zones {
		keys = append(keys, zone)
	}
	return keys
}

func deliveryMapKeys(delivery map[ShippingZoneKey]ZoneDelivery) []ShippingZoneKey {
	keys := make([]ShippingZoneKey, 0, len(delivery))
	for zone := range delivery {
		keys = append(keys, zone)
	}
	return keys
}

// unknownZoneKeys returns the keys outside the closed zone enum, sorted so
// the violation list stays deterministic across map iteration orders.
func unknownZoneKeys(keys []ShippingZoneKey) []string {
	var unknown []string
	for _, key := range keys {
		if _, err := ParseShippingZoneKey(string(key)); err != nil {
			unknown = append(unknown, string(key))
		}
	}

	sort.Strings(unknown)
	return unknown
}

func validateHandlingTime(ht HandlingTime) []string {
	var violations []string

	if ht.From < 0 || ht.To < 0 {
		violations = append(violations, "handling time days must not be negative")
	}
	if ht.From > ht.To {
		violations = append(violations, "handling time 'from' must not exceed 'to'")
	}

	return violations
}

func validateSameDay(sameDay SameDayDelivery) []string {
	var violations []string

	if sameDay.Fee < 0 {
		violations = append(violations, "same day delivery fee must not be negative")
	}

	// Cut-off time and timezone form one optional estimated-delivery block.
	if sameDay.CutOffTime != "" || sameDay.TimeZone != "" {
		if _, err := time.Parse("15:04", sameDay.CutOffTime); err != nil {
			violations = append(violations, fmt.Sprintf("same day delivery cut-off time %q is not a valid HH:MM time", sameDay.CutOffTime))
		}
		if sameDay.TimeZone == "" {
			violations = append(violations, "same day delivery time zone is required when a cut-off time is set")
		}
	}

	return violations
}

func validateMethodZones(cfg *ShippingConfig, method ShippingMethodKey, mc MethodConfig) []string {
	var violations []string
	label := methodLabels[method]

	for _, zone := range AllShippingZones() {
		if !cfg.Zone(zone).Available {
			continue
		}

		delivery, ok := mc.EstimatedDelivery[zone]
		if !ok {
			violations = append(violations, fmt.Sprintf("%s is missing delivery details for the %s zone", label, zone))
			continue
		}

		if delivery.From < 0 || delivery.From > delivery.To {
			violations = append(violations, fmt.Sprintf("%s delivery window for the %s zone must satisfy 0 <= from <= to", label, zone))
		}
		if delivery.Fee < 0 {
			violations = append(violations, fmt.Sprintf("%s fee for the %s zone must not be negative", label, zone))
		}
	}

	return violations
}

func validateFreeShipping(cfg *ShippingConfig) []string {
	var violations []string
	fs := cfg.FreeShipping

	if fs.Threshold < 0 {
		violations = append(violations, "free shipping threshold must not be negative")
	}
	if len(fs.ApplicableMethods) == 0 {
		violations = append(violations, "free shipping requires at least one applicable method")
	}

	for _, method := range fs.ApplicableMethods {
		switch method {
		case MethodStandard:
			if !cfg.Standard.Available {
				violations = append(violations, "free shipping lists standard shipping but standard shipping is not available")
			}
		case MethodExpress:
			if !cfg.Express.Available {
				violations = append(violations, "free shipping lists express shipping but express shipping is not available")
			}
		default:
			violations = append(violations, fmt.Sprintf("free shipping method %q is not supported, only standard and express apply", method))
		}
	}

	return violations
}
