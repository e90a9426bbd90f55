package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BrandStatus string

const (
	BrandStatusInactive      BrandStatus = "inactive"
	BrandStatusActive        BrandStatus = "active"
	BrandStatusSuspended     BrandStatus = "suspended"
	BrandStatusPendingReview BrandStatus = "pendingreview"
)

// Brand is a seller storefront on the marketplace. Its shipping rules live
// in a separate BrandShippingConfig document keyed by the brand id.
type Brand struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Slug          string             `bson:"slug" json:"slug" validate:"required"`
	Description   string             `bson:"description" json:"description"`
	OwnerUserID   primitive.ObjectID `bson:"owner_user_id" json:"ownerUserId"`
	LogoURL       string             `bson:"logo_url" json:"logoUrl"`
	BannerURL     string             `bson:"banner_url" json:"bannerUrl"`
	OriginCountry string             `bson:"origin_country" json:"originCountry"`
	OriginCity    string             `bson:"origin_city" json:"originCity"`
	Status        BrandStatus        `bson:"status" json:"status" validate:"required,oneof=inactive active suspended pendingreview"`
	ProductCount  int                `bson:"product_count" json:"productCount"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt    time.Time          `bson:"modified_at" json:"modifiedAt"`
}

type BrandRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=60"`
	Description   string `json:"description" validate:"omitempty,max=2000"`
	OriginCountry string `json:"originCountry" validate:"required"`
	OriginCity    string `json:"originCity" validate:"required"`
}
