package services

import (
	"context"
	"time"

	"loomria-api-io/api/internal"
	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/pkg/models"

	creditcard "github.com/durango/go-credit-card"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type paymentService struct{}

func NewPaymentService() PaymentService {
	return &paymentService{}
}

// CreatePaymentCard validates the card (Luhn, expiry, CVV) and stores only
// the display metadata. The full number never reaches the database; actual
// charging is tokenized by the payment provider.
func (p *paymentService) CreatePaymentCard(ctx context.Context, userID primitive.ObjectID, req models.PaymentCardInformationRequest) (primitive.ObjectID, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	card := creditcard.Card{
		Number:  req.CardNumber,
		Cvv:     req.CVV,
		Month:   req.ExpiryMonth,
		Year:    req.ExpiryYear,
		Company: creditcard.Company{},
	}

	if err := card.Validate(true); err != nil {
		return primitive.NilObjectID, err
	}

	lastFour, err := card.LastFour()
	if err != nil {
		return primitive.NilObjectID, err
	}

	company, err := card.MethodValidate()
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err := CheckRecordLimit(ctx, common.UserPaymentCardsTable, "userId", userID, MaxPaymentCards, ErrMaxPaymentCardsReached); err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	cardInformation := models.PaymentCardInformation{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		IsDefault:      req.IsDefault,
		CardHolderName: req.CardHolderName,
		LastFourDigits: lastFour,
		ExpiryMonth:    card.Month,
		ExpiryYear:     card.Year,
		Company:        company.Long,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if req.IsDefault {
		if err := SetOtherRecordsToFalse(ctx, common.UserPaymentCardsTable, "userId", userID, cardInformation.ID, "isDefault"); err != nil {
			return primitive.NilObjectID, err
		}
	}

	if _, err := common.UserPaymentCardsTable.InsertOne(ctx, cardInformation); err != nil {
		return primitive.NilObjectID, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateUserPaymentCard, userID.Hex())

	return cardInformation.ID, nil
}

func (p *paymentService) GetPaymentCards(ctx context.Context, userID primitive.ObjectID) ([]models.PaymentCardInformation, error) {
	cursor, err := common.UserPaymentCardsTable.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cards []models.PaymentCardInformation
	if err = cursor.All(ctx, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}

func (p *paymentService) ChangeDefaultPaymentCard(ctx context.Context, userID, cardID primitive.ObjectID) error {
	callback := func(sc mongo.SessionContext) (any, error) {
		if err := SetOtherRecordsToFalse(sc, common.UserPaymentCardsTable, "userId", userID, cardID, "isDefault"); err != nil {
			return nil, err
		}

		filter := bson.M{"_id": cardID, "userId": userID}
		result, err := common.UserPaymentCardsTable.UpdateOne(sc, filter, bson.M{"$set": bson.M{"isDefault": true, "updatedAt": time.Now()}})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, errors.New("payment card not found")
		}

		return result, nil
	}

	if _, err := ExecuteTransaction(ctx, callback); err != nil {
		return err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateUserPaymentCard, userID.Hex())

	return nil
}

func (p *paymentService) DeletePaymentCard(ctx context.Context, userID, cardID primitive.ObjectID) error {
	result, err := common.UserPaymentCardsTable.DeleteOne(ctx, bson.M{"_id": cardID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("payment card not found")
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateUserPaymentCard, userID.Hex())

	return nil
}
