package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VariantSelection struct {
	Size  string `bson:"size,omitempty" json:"size,omitempty"`
	Color string `bson:"color,omitempty" json:"color,omitempty"`
}

type CartItem struct {
	Id        primitive.ObjectID `bson:"_id" json:"_id"`
	ProductId primitive.ObjectID `bson:"product_id" json:"productId"`
	BrandId   primitive.ObjectID `bson:"brand_id" json:"brandId"`
	UserId    primitive.ObjectID `bson:"user_id" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	UnitPrice float64            `bson:"unit_price" json:"unitPrice"`

	Variant *VariantSelection `bson:"variant,omitempty" json:"variant,omitempty"`

	// Brand information denormalized for cart rendering
	BrandName string `bson:"brand_name" json:"brandName"`
	BrandSlug string `bson:"brand_slug" json:"brandSlug"`

	AddedAt    time.Time `bson:"added_at" json:"addedAt"`
	ModifiedAt time.Time `bson:"modified_at" json:"modifiedAt"`
}

func (item *CartItem) TotalPrice() float64 {
	return item.UnitPrice * float64(item.Quantity)
}

type CartItemRequest struct {
	ProductId primitive.ObjectID `json:"productId"`
	BrandId   primitive.ObjectID `json:"brandId"`
	Quantity  int                `json:"quantity" validate:"gte=1"`
	Variant   *VariantSelection  `json:"variant,omitempty"`
}
