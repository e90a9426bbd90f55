package services

import (
	"context"
	"errors"

	"loomria-api-io/api/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// TransactionCallback defines the callback function for database transactions
type TransactionCallback func(ctx mongo.SessionContext) (any, error)

// ExecuteTransaction executes a database transaction with proper error handling
func ExecuteTransaction(ctx context.Context, callback TransactionCallback) (any, error) {
	wc := writeconcern.New(writeconcern.WMajority())
	txnOptions := options.Transaction().SetWriteConcern(wc)
	session, err := util.DB.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, callback, txnOptions)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SetOtherRecordsToFalse sets a boolean field to false for other records
// belonging to a user. Used for single-default invariants (addresses,
// payment cards).
func SetOtherRecordsToFalse(ctx context.Context, collection *mongo.Collection, userFieldName string, userID primitive.ObjectID, recordID primitive.ObjectID, boolFieldName string) error {
	filter := bson.M{
		userFieldName: userID,
		"_id":         bson.M{"$ne": recordID},
		boolFieldName: true,
	}

	update := bson.M{
		"$set": bson.M{boolFieldName: false},
	}

	_, err := collection.UpdateMany(ctx, filter, update)
	return err
}

// CheckRecordLimit checks if a user has reached a specified limit for a collection
func CheckRecordLimit(ctx context.Context, collection *mongo.Collection, userFieldName string, userID primitive.ObjectID, limit int64, errorMessage string) error {
	filter := bson.M{userFieldName: userID}
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}

	if count >= limit {
		return errors.New(errorMessage)
	}

	return nil
}

const (
	MaxUserAddresses = 5
	MaxPaymentCards  = 5
)

const (
	ErrMaxAddressesReached    = "max allowed addresses reached. please delete other address to accommodate a new one"
	ErrMaxPaymentCardsReached = "max allowed payment cards reached. please delete other cards to accommodate a new one"
)
