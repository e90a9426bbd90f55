package common

import (
	"context"

	"loomria-api-io/api/pkg/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetBrandById(ctx context.Context, id primitive.ObjectID) (models.Brand, error) {
	var brand models.Brand
	err := BrandCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err != nil {
		return models.Brand{}, err
	}

	return brand, nil
}

// VerifyBrandOwnership checks that the given user owns the brand. Handlers
// mutating brand-scoped documents call this before touching anything.
func VerifyBrandOwnership(ctx context.Context, userID, brandID primitive.ObjectID) error {
	err := BrandCollection.FindOne(ctx, bson.M{"_id": brandID, "owner_user_id": userID}).Err()
	if err == mongo.ErrNoDocuments {
		return errors.New("user does not own this brand")
	}

	return err
}
