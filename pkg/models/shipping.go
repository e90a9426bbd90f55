package models

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShippingZoneKey string

const (
	ZoneDomestic    ShippingZoneKey = "domestic"
	ZoneSubRegional ShippingZoneKey = "sub_regional"
	ZoneRegional    ShippingZoneKey = "regional"
	ZoneGlobal      ShippingZoneKey = "global"
)

// AllShippingZones returns every zone key in display order. Validation and
// option derivation iterate this slice so output ordering stays stable.
func AllShippingZones() []ShippingZoneKey {
	return []ShippingZoneKey{ZoneDomestic, ZoneSubRegional, ZoneRegional, ZoneGlobal}
}

func ParseShippingZoneKey(zone string) (ShippingZoneKey, error) {
	switch zone {
	case "domestic":
		return ZoneDomestic, nil
	case "sub_regional":
		return ZoneSubRegional, nil
	case "regional":
		return ZoneRegional, nil
	case "global":
		return ZoneGlobal, nil
	}

	return "", fmt.Errorf("invalid shipping zone from request: %v", zone)
}

type ShippingMethodKey string

const (
	MethodSameDay  ShippingMethodKey = "same_day"
	MethodStandard ShippingMethodKey = "standard"
	MethodExpress  ShippingMethodKey = "express"
)

func AllShippingMethods() []ShippingMethodKey {
	return []ShippingMethodKey{MethodSameDay, MethodStandard, MethodExpress}
}

func ParseShippingMethodKey(method string) (ShippingMethodKey, error) {
	switch method {
	case "same_day":
		return MethodSameDay, nil
	case "standard":
		return MethodStandard, nil
	case "express":
		return MethodExpress, nil
	}

	return "", fmt.Errorf("invalid shipping method from request: %v", method)
}

// HandlingTime is the number of days a brand needs to prepare an order.
type HandlingTime struct {
	From int `bson:"from" json:"from"`
	To   int `bson:"to" json:"to"`
}

// ShippingZone holds availability and exclusions for one destination tier.
// The domestic zone excludes by city, all other zones exclude by country.
type ShippingZone struct {
	ExcludedCities    []string `bson:"excluded_cities,omitempty" json:"excludedCities,omitempty"`
	ExcludedCountries []string `bson:"excluded_countries,omitempty" json:"excludedCountries,omitempty"`
	Available         bool     `bson:"available" json:"available"`
}

// ZoneDelivery is one delivery window and fee for a method+zone pair.
type ZoneDelivery struct {
	From int     `bson:"from" json:"from"`
	To   int     `bson:"to" json:"to"`
	Fee  float64 `bson:"fee" json:"fee"`
}

type SameDayDelivery struct {
	CutOffTime            string   `bson:"cut_off_time,omitempty" json:"cutOffTime,omitempty"`
	TimeZone              string   `bson:"time_zone,omitempty" json:"timeZone,omitempty"`
	ApplicableCities      []string `bson:"applicable_cities,omitempty" json:"applicableCities,omitempty"`
	Fee                   float64  `bson:"fee" json:"fee"`
	Available             bool     `bson:"available" json:"available"`
	ExcludePublicHolidays bool     `bson:"exclude_public_holidays" json:"excludePublicHolidays"`
}

// MethodConfig is the per-zone delivery configuration for standard and
// express shipping. EstimatedDelivery only carries entries for zones the
// brand has enabled at the zone level.
type MethodConfig struct {
	EstimatedDelivery map[ShippingZoneKey]ZoneDelivery `bson:"estimated_delivery,omitempty" json:"estimatedDelivery,omitempty"`
	Available         bool                             `bson:"available" json:"available"`
}

type FreeShipping struct {
	ApplicableMethods []ShippingMethodKey `bson:"applicable_methods,omitempty" json:"applicableMethods,omitempty"`
	Threshold         float64             `bson:"threshold" json:"threshold"`
	Available         bool                `bson:"available" json:"available"`
}

// ShippingConfig is the brand-wide shipping configuration. One document per
// brand, replaced wholesale on every save.
type ShippingConfig struct {
	Zones        map[ShippingZoneKey]ShippingZone `bson:"zones" json:"zones"`
	HandlingTime HandlingTime                     `bson:"handling_time" json:"handlingTime"`
	SameDay      SameDayDelivery                  `bson:"same_day" json:"sameDay"`
	Standard     MethodConfig                     `bson:"standard" json:"standard"`
	Express      MethodConfig                     `bson:"express" json:"express"`
	FreeShipping FreeShipping                     `bson:"free_shipping" json:"freeShipping"`
	CreatedAt    primitive.DateTime               `bson:"created_at" json:"createdAt"`
	ModifiedAt   primitive.DateTime               `bson:"modified_at" json:"modifiedAt"`
	ID           primitive.ObjectID               `bson:"_id" json:"_id" validate:"omitempty"`
	BrandID      primitive.ObjectID               `bson:"brand_id" json:"brandId"`
}

// DefaultShippingConfig returns the configuration a brand starts from:
// every zone and method disabled, all numeric fields zero.
func DefaultShippingConfig() ShippingConfig {
	zones := make(map[ShippingZoneKey]ShippingZone, len(AllShippingZones()))
	for _, zone := range AllShippingZones() {
		zones[zone] = ShippingZone{}
	}

	return ShippingConfig{
		Zones:        zones,
		HandlingTime: HandlingTime{},
		SameDay:      SameDayDelivery{},
		Standard:     MethodConfig{EstimatedDelivery: map[ShippingZoneKey]ZoneDelivery{}},
		Express:      MethodConfig{EstimatedDelivery: map[ShippingZoneKey]ZoneDelivery{}},
		FreeShipping: FreeShipping{},
	}
}

// Zone returns the configuration for one zone, treating a missing map entry
// as a disabled zone.
func (cfg *ShippingConfig) Zone(key ShippingZoneKey) ShippingZone {
	if cfg.Zones == nil {
		return ShippingZone{}
	}
	return cfg.Zones[key]
}

// Method returns the per-zone config for a complex method. Same-day has no
// zone dimension and is not addressable here.
func (cfg *ShippingConfig) Method(key ShippingMethodKey) (MethodConfig, error) {
	switch key {
	case MethodStandard:
		return cfg.Standard, nil
	case MethodExpress:
		return cfg.Express, nil
	}

	return MethodConfig{}, fmt.Errorf("method %q has no per-zone configuration", key)
}

// FreeShippingExcludedCountries derives the country exclusion list for free
// shipping as the union of every zone's exclusions. It is computed on demand
// and never stored, so it cannot go stale when zone exclusions change.
func (cfg *ShippingConfig) FreeShippingExcludedCountries() []string {
	seen := make(map[string]bool)
	var countries []string
	for _, zone := range AllShippingZones() {
		for _, country := range cfg.Zone(zone).ExcludedCountries {
			if !seen[country] {
				seen[country] = true
				countries = append(countries, country)
			}
		}
	}

	sort.Strings(countries)
	return countries
}

// Equal reports whether two configurations describe the same shipping rules.
// Exclusion and city lists are compared as sets, so reordering a list does
// not count as a change and does not force a redundant save.
func (cfg *ShippingConfig) Equal(other *ShippingConfig) bool {
	if cfg == nil || other == nil {
		return cfg == other
	}

	if cfg.HandlingTime != other.HandlingTime {
		return false
	}

	for _, zone := range AllShippingZones() {
		a, b := cfg.Zone(zone), other.Zone(zone)
		if a.Available != b.Available {
			return false
		}
		if !equalStringSets(a.ExcludedCities, b.ExcludedCities) {
			return false
		}
		if !equalStringSets(a.ExcludedCountries, b.ExcludedCountries) {
			return false
		}
	}

	if !sameDayEqual(cfg.SameDay, other.SameDay) {
		return false
	}
	if !methodConfigEqual(cfg.Standard, other.Standard) {
		return false
	}
	if !methodConfigEqual(cfg.Express, other.Express) {
		return false
	}

	return freeShippingEqual(cfg.FreeShipping, other.FreeShipping)
}

func sameDayEqual(a, b SameDayDelivery) bool {
	if a.Available != b.Available || a.Fee != b.Fee {
		return false
	}
	if a.CutOffTime != b.CutOffTime || a.TimeZone != b.TimeZone {
		return false
	}
	if a.ExcludePublicHolidays != b.ExcludePublicHolidays {
		return false
	}
	return equalStringSets(a.ApplicableCities, b.ApplicableCities)
}

func methodConfigEqual(a, b MethodConfig) bool {
	if a.Available != b.Available {
		return false
	}
	if len(a.EstimatedDelivery) != len(b.EstimatedDelivery) {
		return false
	}
	for zone, delivery := range a.EstimatedDelivery {
		otherDelivery, ok := b.EstimatedDelivery[zone]
		if !ok || delivery != otherDelivery {
			return false
		}
	}

	return true
}

func freeShippingEqual(a, b FreeShipping) bool {
	if a.Available != b.Available || a.Threshold != b.Threshold {
		return false
	}
	if len(a.ApplicableMethods) != len(b.ApplicableMethods) {
		return false
	}

	methods := make(map[ShippingMethodKey]bool, len(a.ApplicableMethods))
	for _, method := range a.ApplicableMethods {
		methods[method] = true
	}
	for _, method := range b.ApplicableMethods {
		if !methods[method] {
			return false
		}
	}

	return true
}

func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		if !set[s] {
			return false
		}
	}

	return true
}
