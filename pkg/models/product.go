package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductState string

const (
	ProductStateDraft       ProductState = "draft"
	ProductStateActive      ProductState = "active"
	ProductStateSoldOut     ProductState = "soldout"
	ProductStateDeactivated ProductState = "deactivated"
)

// ProductVariant is one purchasable size/color row under a product.
type ProductVariant struct {
	Size     string  `bson:"size" json:"size" validate:"required"`
	Color    string  `bson:"color" json:"color" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"required,gt=0"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"gte=0"`
	SKU      string  `bson:"sku,omitempty" json:"sku,omitempty"`
}

// Product carries the general details of an apparel item. The shipping step
// is a separate ProductShipping document sharing the product id, as are care
// instructions and the return policy reference.
type Product struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	BrandID          primitive.ObjectID `bson:"brand_id" json:"brandId"`
	Title            string             `bson:"title" json:"title" validate:"required"`
	Slug             string             `bson:"slug" json:"slug"`
	Description      string             `bson:"description" json:"description"`
	Category         string             `bson:"category" json:"category"`
	Thumbnail        string             `bson:"thumbnail" json:"thumbnail"`
	Gallery          []string           `bson:"gallery" json:"gallery"`
	Variants         []ProductVariant   `bson:"variants" json:"variants"`
	CareInstructions string             `bson:"care_instructions,omitempty" json:"careInstructions,omitempty"`
	State            ProductState       `bson:"state" json:"state" validate:"required,oneof=draft active soldout deactivated"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt       time.Time          `bson:"modified_at" json:"modifiedAt"`
}

type ProductRequest struct {
	Title            string           `json:"title" validate:"required,min=5,max=140"`
	Description      string           `json:"description" validate:"omitempty,max=2000"`
	Category         string           `json:"category" validate:"required"`
	Variants         []ProductVariant `json:"variants" validate:"required,gt=0,dive"`
	CareInstructions string           `json:"careInstructions" validate:"omitempty,max=1000"`
}
