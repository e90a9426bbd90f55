package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentCardInformation stores the card metadata a customer manages in
// their account. Tokenization happens at the payment provider; only the
// last four digits are ever returned to clients.
type PaymentCardInformation struct {
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
	CardHolderName string             `bson:"cardHolderName" json:"cardHolderName" validate:"required"`
	LastFourDigits string             `bson:"lastFourDigits" json:"lastFourDigits" validate:"required"`
	ExpiryMonth    string             `bson:"expiryMonth" json:"expiryMonth" validate:"required"`
	ExpiryYear     string             `bson:"expiryYear" json:"expiryYear" validate:"required"`
	Company        string             `bson:"company" json:"company,omitempty"`
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	IsDefault      bool               `bson:"isDefault" json:"isDefault"`
}

type PaymentCardInformationRequest struct {
	CardHolderName string `json:"cardHolderName" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	ExpiryMonth    string `json:"expiryMonth" validate:"required"`
	ExpiryYear     string `json:"expiryYear" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
	IsDefault      bool   `json:"isDefault"`
}
