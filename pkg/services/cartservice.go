package services

import (
	"context"
	"fmt"
	"time"

	"loomria-api-io/api/internal"
	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/pkg/models"
	"loomria-api-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cartService struct{}

func NewCartService() CartService {
	return &cartService{}
}

// SaveCartItem adds a product variant to the user's cart after checking the
// product is live and the variant has enough stock.
func (cs *cartService) SaveCartItem(ctx context.Context, userID primitive.ObjectID, req models.CartItemRequest) (primitive.ObjectID, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	var product models.Product
	if err := common.ProductCollection.FindOne(ctx, bson.M{"_id": req.ProductId}).Decode(&product); err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "product not found")
	}
	if product.State != models.ProductStateActive {
		return primitive.NilObjectID, errors.New("product is not available")
	}

	variant, err := matchVariant(product, req.Variant)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if variant.Quantity < req.Quantity {
		return primitive.NilObjectID, fmt.Errorf("insufficient inventory. Available: %d, Requested: %d", variant.Quantity, req.Quantity)
	}

	brand, err := common.GetBrandById(ctx, product.BrandID)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "brand not found")
	}

	now := time.Now()
	cartItem := models.CartItem{
		Id:         primitive.NewObjectID(),
		ProductId:  product.ID,
		BrandId:    brand.ID,
		UserId:     userID,
		Title:      product.Title,
		Thumbnail:  product.Thumbnail,
		Quantity:   req.Quantity,
		UnitPrice:  variant.Price,
		Variant:    req.Variant,
		BrandName:  brand.Name,
		BrandSlug:  brand.Slug,
		AddedAt:    now,
		ModifiedAt: now,
	}

	if _, err := common.UserCartCollection.InsertOne(ctx, cartItem); err != nil {
		return primitive.NilObjectID, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateCart, userID.Hex())

	return cartItem.Id, nil
}

func (cs *cartService) GetCartItems(ctx context.Context, userID primitive.ObjectID, pagination util.PaginationArgs) ([]models.CartItem, int64, error) {
	filter := bson.M{"user_id": userID}
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(bson.D{{Key: "added_at", Value: -1}})

	cursor, err := common.UserCartCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	count, err := common.UserCartCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (cs *cartService) UpdateCartItemQuantity(ctx context.Context, userID, cartItemID primitive.ObjectID, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	filter := bson.M{"_id": cartItemID, "user_id": userID}
	update := bson.M{"$set": bson.M{"quantity": quantity, "modified_at": time.Now()}}
	result, err := common.UserCartCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("cart item not found")
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateCart, userID.Hex())

	return nil
}

func (cs *cartService) DeleteCartItem(ctx context.Context, userID, cartItemID primitive.ObjectID) (int64, error) {
	result, err := common.UserCartCollection.DeleteOne(ctx, bson.M{"_id": cartItemID, "user_id": userID})
	if err != nil {
		return 0, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateCart, userID.Hex())

	return result.DeletedCount, nil
}

func (cs *cartService) ClearCartItems(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := common.UserCartCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateCart, userID.Hex())

	return result.DeletedCount, nil
}

func matchVariant(product models.Product, selection *models.VariantSelection) (models.ProductVariant, error) {
	if selection == nil {
		if len(product.Variants) == 0 {
			return models.ProductVariant{}, errors.New("product has no variants")
		}
		return product.Variants[0], nil
	}

	for _, variant := range product.Variants {
		if variant.Size == selection.Size && variant.Color == selection.Color {
			return variant, nil
		}
	}

	return models.ProductVariant{}, fmt.Errorf("no variant matches size %q and color %q", selection.Size, selection.Color)
}
