package services

import (
	"context"

	"loomria-api-io/api/internal"
	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/pkg/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type addressService struct{}

func NewAddressService() AddressService {
	return &addressService{}
}

func (a *addressService) CreateUserAddress(ctx context.Context, userID primitive.ObjectID, address models.UserAddressExcerpt) (primitive.ObjectID, error) {
	if err := common.Validate.Struct(&address); err != nil {
		return primitive.NilObjectID, err
	}

	if err := CheckRecordLimit(ctx, common.UserAddressCollection, "user_id", userID, MaxUserAddresses, ErrMaxAddressesReached); err != nil {
		return primitive.NilObjectID, err
	}

	addressID := primitive.NewObjectID()
	userAddress := models.UserAddress{
		Id:         addressID,
		UserId:     userID,
		City:       address.City,
		State:      address.State,
		Street:     address.Street,
		PostalCode: address.PostalCode,
		Country:    address.Country,
		IsDefault:  address.IsDefault,
	}

	if address.IsDefault {
		if err := SetOtherRecordsToFalse(ctx, common.UserAddressCollection, "user_id", userID, addressID, "is_default_shipping_address"); err != nil {
			return primitive.NilObjectID, err
		}
	}

	if _, err := common.UserAddressCollection.InsertOne(ctx, userAddress); err != nil {
		return primitive.NilObjectID, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateUserAddress, userID.Hex())

	return addressID, nil
}

func (a *addressService) GetUserAddresses(ctx context.Context, userID primitive.ObjectID) ([]models.UserAddress, error) {
	cursor, err := common.UserAddressCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addresses []models.UserAddress
	if err = cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (a *addressService) UpdateUserAddress(ctx context.Context, userID, addressID primitive.ObjectID, address models.UserAddressExcerpt) error {
	if err := common.Validate.Struct(&address); err != nil {
		return err
	}

	if address.IsDefault {
		if err := SetOtherRecordsToFalse(ctx, common.UserAddressCollection, "user_id", userID, addressID, "is_default_shipping_address"); err != nil {
			return err
		}
	}

	filter := bson.M{"_id": addressID, "user_id": userID}
	result, err := common.UserAddressCollection.UpdateOne(ctx, filter, bson.M{"$set": address})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("address not found")
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateUserAddress, userID.Hex())

	return nil
}

// ChangeDefaultAddress flips the default flag to the given address inside a
// transaction so exactly one default survives concurrent edits.
func (a *addressService) ChangeDefaultAddress(ctx context.Context, userID, addressID primitive.ObjectID) error {
	callback := func(sc mongo.SessionContext) (any, error) {
		if err := SetOtherRecordsToFalse(sc, common.UserAddressCollection, "user_id", userID, addressID, "is_default_shipping_address"); err != nil {
			return nil, err
		}

		filter := bson.M{"_id": addressID, "user_id": userID}
		result, err := common.UserAddressCollection.UpdateOne(sc, filter, bson.M{"$set": bson.M{"is_default_shipping_address": true}})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, errors.New("address not found")
		}

		return result, nil
	}

	if _, err := ExecuteTransaction(ctx, callback); err != nil {
		return err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateUserAddress, userID.Hex())

	return nil
}

func (a *addressService) DeleteUserAddress(ctx context.Context, userID, addressID primitive.ObjectID) error {
	result, err := common.UserAddressCollection.DeleteOne(ctx, bson.M{"_id": addressID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("address not found")
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateUserAddress, userID.Hex())

	return nil
}
