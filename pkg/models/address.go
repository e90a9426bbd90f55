package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserAddress struct {
	City       string             `bson:"city" json:"city" validate:"required"`
	State      string             `bson:"state" json:"state" validate:"required"`
	Street     string             `bson:"street" json:"street" validate:"required"`
	PostalCode string             `bson:"postal_code" json:"postalCode" validate:"required"`
	Country    string             `bson:"country" json:"country" validate:"required"`
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
	UserId     primitive.ObjectID `bson:"user_id" json:"userId"`
	IsDefault  bool               `bson:"is_default_shipping_address" json:"isDefault"`
}

type UserAddressExcerpt struct {
	City       string `bson:"city" json:"city" validate:"required"`
	State      string `bson:"state" json:"state" validate:"required"`
	Street     string `bson:"street" json:"street" validate:"required"`
	PostalCode string `bson:"postal_code" json:"postalCode" validate:"required"`
	Country    string `bson:"country" json:"country" validate:"required"`
	IsDefault  bool   `bson:"is_default_shipping_address" json:"isDefault"`
}
