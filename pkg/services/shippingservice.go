package services

import (
	"context"
	"time"

	"loomria-api-io/api/internal"
	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/pkg/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type shippingService struct{}

func NewShippingService() ShippingService {
	return &shippingService{}
}

// GetBrandShippingConfig loads the brand's single configuration document.
// A brand that has never saved one gets nil, not an error.
func (s *shippingService) GetBrandShippingConfig(ctx context.Context, brandID primitive.ObjectID) (*models.ShippingConfig, error) {
	var cfg models.ShippingConfig
	err := common.BrandShippingCollection.FindOne(ctx, bson.M{"brand_id": brandID}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveBrandShippingConfig replaces the brand's configuration wholesale.
// Validation violations block the write; an unchanged configuration skips
// it. Last write wins on the single per-brand document.
func (s *shippingService) SaveBrandShippingConfig(ctx context.Context, userID, brandID primitive.ObjectID, cfg models.ShippingConfig) (*ShippingConfigSaveResult, error) {
	if err := common.VerifyBrandOwnership(ctx, userID, brandID); err != nil {
		return nil, err
	}

	if violations := models.ValidateShippingConfig(&cfg); len(violations) > 0 {
		return &ShippingConfigSaveResult{Violations: violations}, nil
	}

	current, err := s.GetBrandShippingConfig(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Equal(&cfg) {
		return &ShippingConfigSaveResult{Saved: true, Changed: false}, nil
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	cfg.BrandID = brandID
	cfg.ModifiedAt = now
	if current != nil {
		cfg.ID = current.ID
		cfg.CreatedAt = current.CreatedAt
	} else {
		cfg.ID = primitive.NewObjectID()
		cfg.CreatedAt = now
	}

	opts := options.Replace().SetUpsert(true)
	_, err = common.BrandShippingCollection.ReplaceOne(ctx, bson.M{"brand_id": brandID}, cfg, opts)
	if err != nil {
		return nil, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateBrandShipping, brandID.Hex())

	return &ShippingConfigSaveResult{Saved: true, Changed: true}, nil
}

// GetSelectableShippingOptions derives the method+zone pairs a product may
// select from the brand's current configuration.
func (s *shippingService) GetSelectableShippingOptions(ctx context.Context, brandID primitive.ObjectID) (*models.ShippingOptions, error) {
	cfg, err := s.GetBrandShippingConfig(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, errors.New("brand has no shipping configuration yet")
	}

	options := models.SelectableShippingOptions(cfg)
	return &options, nil
}

// SaveProductShipping validates a product's shipping selection against the
// brand's current configuration and persists it, one document per product.
func (s *shippingService) SaveProductShipping(ctx context.Context, userID, brandID, productID primitive.ObjectID, req models.ProductShippingRequest) (primitive.ObjectID, error) {
	if err := common.VerifyBrandOwnership(ctx, userID, brandID); err != nil {
		return primitive.NilObjectID, err
	}

	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}
	if err := validateSelectionKeys(req); err != nil {
		return primitive.NilObjectID, err
	}

	cfg, err := s.GetBrandShippingConfig(ctx, brandID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if cfg == nil {
		return primitive.NilObjectID, errors.New("brand has no shipping configuration yet")
	}

	selection := req.ToSelection(productID)
	if !selection.Validate(cfg) {
		return primitive.NilObjectID, errors.New("shipping selection is incomplete or no longer matches the brand configuration")
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	selection.ModifiedAt = now

	var existing models.ProductShipping
	err = common.ProductShippingCollection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&existing)
	switch err {
	case nil:
		selection.ID = existing.ID
		selection.CreatedAt = existing.CreatedAt
	case mongo.ErrNoDocuments:
		selection.ID = primitive.NewObjectID()
		selection.CreatedAt = now
	default:
		return primitive.NilObjectID, err
	}

	opts := options.Replace().SetUpsert(true)
	_, err = common.ProductShippingCollection.ReplaceOne(ctx, bson.M{"product_id": productID}, selection, opts)
	if err != nil {
		return primitive.NilObjectID, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateProductShipping, productID.Hex())

	return selection.ID, nil
}

func (s *shippingService) GetProductShipping(ctx context.Context, productID primitive.ObjectID) (*models.ProductShipping, error) {
	var selection models.ProductShipping
	err := common.ProductShippingCollection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&selection)
	if err != nil {
		return nil, err
	}

	return &selection, nil
}

// validateSelectionKeys rejects zone keys that do not belong to the closed
// zone enum before they reach the resolver.
func validateSelectionKeys(req models.ProductShippingRequest) error {
	for zone := range req.Standard {
		if _, err := models.ParseShippingZoneKey(string(zone)); err != nil {
			return errors.Wrap(err, "standard shipping")
		}
	}
	for zone := range req.Express {
		if _, err := models.ParseShippingZoneKey(string(zone)); err != nil {
			return errors.Wrap(err, "express shipping")
		}
	}

	return nil
}
