package services

import (
	"context"
	"time"

	"loomria-api-io/api/internal"
	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/pkg/models"
	"loomria-api-io/api/pkg/util"

	slug2 "github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productService struct{}

func NewProductService() ProductService {
	return &productService{}
}

func (p *productService) CreateProduct(ctx context.Context, userID, brandID primitive.ObjectID, req models.ProductRequest) (primitive.ObjectID, error) {
	if err := common.VerifyBrandOwnership(ctx, userID, brandID); err != nil {
		return primitive.NilObjectID, err
	}
	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	product := models.Product{
		ID:               primitive.NewObjectID(),
		BrandID:          brandID,
		Title:            req.Title,
		Slug:             slug2.Make(req.Title),
		Description:      req.Description,
		Category:         req.Category,
		Variants:         req.Variants,
		CareInstructions: req.CareInstructions,
		State:            models.ProductStateDraft,
		CreatedAt:        now,
		ModifiedAt:       now,
	}

	if _, err := common.ProductCollection.InsertOne(ctx, product); err != nil {
		return primitive.NilObjectID, err
	}

	_, err := common.BrandCollection.UpdateOne(ctx, bson.M{"_id": brandID}, bson.M{"$inc": bson.M{"product_count": 1}})
	if err != nil {
		util.LogError("failed to bump brand product count", err)
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateBrandProducts, brandID.Hex())

	return product.ID, nil
}

// GetProduct resolves a product by hex object id or by slug.
func (p *productService) GetProduct(ctx context.Context, productIdentifier string) (*models.Product, error) {
	filter := bson.M{"slug": productIdentifier}
	if productID, err := primitive.ObjectIDFromHex(productIdentifier); err == nil {
		filter = bson.M{"_id": productID}
	}

	var product models.Product
	if err := common.ProductCollection.FindOne(ctx, filter).Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productService) GetBrandProducts(ctx context.Context, brandID primitive.ObjectID, pagination util.PaginationArgs) ([]models.Product, int64, error) {
	filter := bson.M{"brand_id": brandID}
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetCreatedAtSortBson(pagination.Sort))

	cursor, err := common.ProductCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	count, err := common.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (p *productService) UpdateProductState(ctx context.Context, userID, productID primitive.ObjectID, state models.ProductState) error {
	var product models.Product
	if err := common.ProductCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		return err
	}
	if err := common.VerifyBrandOwnership(ctx, userID, product.BrandID); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"state": state, "modified_at": time.Now()}}
	if _, err := common.ProductCollection.UpdateOne(ctx, bson.M{"_id": productID}, update); err != nil {
		return err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateProduct, productID.Hex())

	return nil
}

func (p *productService) DeleteProduct(ctx context.Context, userID, productID primitive.ObjectID) error {
	var product models.Product
	if err := common.ProductCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		return err
	}
	if err := common.VerifyBrandOwnership(ctx, userID, product.BrandID); err != nil {
		return err
	}

	if _, err := common.ProductCollection.DeleteOne(ctx, bson.M{"_id": productID}); err != nil {
		return err
	}
	// The shipping step document shares the product id and goes with it.
	if _, err := common.ProductShippingCollection.DeleteOne(ctx, bson.M{"product_id": productID}); err != nil {
		util.LogError("failed to delete product shipping selection", err)
	}

	_, err := common.BrandCollection.UpdateOne(ctx, bson.M{"_id": product.BrandID}, bson.M{"$inc": bson.M{"product_count": -1}})
	if err != nil {
		util.LogError("failed to bump brand product count", err)
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateBrandProducts, product.BrandID.Hex())

	return nil
}
