package services

import (
	"context"
	"mime/multipart"
	"time"

	"loomria-api-io/api/internal"
	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/pkg/models"
	"loomria-api-io/api/pkg/util"

	slug2 "github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type brandService struct {
	media util.MediaUpload
}

func NewBrandService() BrandService {
	return &brandService{media: util.NewMediaUpload()}
}

func (b *brandService) CheckBrandNameAvailability(ctx context.Context, name string) (bool, error) {
	slug := slug2.Make(name)
	err := common.BrandCollection.FindOne(ctx, bson.M{"slug": slug}).Err()
	if err == mongo.ErrNoDocuments {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return false, nil
}

// CreateBrand onboards a new brand and seeds its shipping configuration
// with the schema default, everything disabled, so the configuration form
// always has a document to start from.
func (b *brandService) CreateBrand(ctx context.Context, userID primitive.ObjectID, req models.BrandRequest) (primitive.ObjectID, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	available, err := b.CheckBrandNameAvailability(ctx, req.Name)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !available {
		return primitive.NilObjectID, errors.New("brand name is already taken")
	}

	now := time.Now()
	brand := models.Brand{
		ID:            primitive.NewObjectID(),
		Name:          req.Name,
		Slug:          slug2.Make(req.Name),
		Description:   req.Description,
		OwnerUserID:   userID,
		LogoURL:       common.DEFAULT_BRAND_LOGO,
		OriginCountry: req.OriginCountry,
		OriginCity:    req.OriginCity,
		Status:        models.BrandStatusPendingReview,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	if _, err := common.BrandCollection.InsertOne(ctx, brand); err != nil {
		return primitive.NilObjectID, err
	}

	cfg := models.DefaultShippingConfig()
	cfg.ID = primitive.NewObjectID()
	cfg.BrandID = brand.ID
	cfg.CreatedAt = primitive.NewDateTimeFromTime(now)
	cfg.ModifiedAt = primitive.NewDateTimeFromTime(now)
	if _, err := common.BrandShippingCollection.InsertOne(ctx, cfg); err != nil {
		return primitive.NilObjectID, err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateBrand, brand.ID.Hex())

	return brand.ID, nil
}

// GetBrand resolves a brand by hex object id or by slug.
func (b *brandService) GetBrand(ctx context.Context, brandIdentifier string) (*models.Brand, error) {
	filter := bson.M{"slug": brandIdentifier}
	if brandID, err := primitive.ObjectIDFromHex(brandIdentifier); err == nil {
		filter = bson.M{"_id": brandID}
	}

	var brand models.Brand
	if err := common.BrandCollection.FindOne(ctx, filter).Decode(&brand); err != nil {
		return nil, err
	}

	return &brand, nil
}

func (b *brandService) GetBrandByOwnerUserId(ctx context.Context, userID primitive.ObjectID) (*models.Brand, error) {
	var brand models.Brand
	err := common.BrandCollection.FindOne(ctx, bson.M{"owner_user_id": userID}).Decode(&brand)
	if err != nil {
		return nil, err
	}

	return &brand, nil
}

func (b *brandService) UpdateBrandInformation(ctx context.Context, brandID, userID primitive.ObjectID, req models.BrandRequest) error {
	if err := common.VerifyBrandOwnership(ctx, userID, brandID); err != nil {
		return err
	}
	if err := common.Validate.Struct(&req); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":           req.Name,
		"description":    req.Description,
		"origin_country": req.OriginCountry,
		"origin_city":    req.OriginCity,
		"modified_at":    time.Now(),
	}}
	_, err := common.BrandCollection.UpdateOne(ctx, bson.M{"_id": brandID}, update)
	if err != nil {
		return err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateBrand, brandID.Hex())

	return nil
}

// UpdateBrandLogo uploads the image to the media collaborator and stores
// the returned URL.
func (b *brandService) UpdateBrandLogo(ctx context.Context, brandID, userID primitive.ObjectID, file multipart.File) (string, error) {
	if err := common.VerifyBrandOwnership(ctx, userID, brandID); err != nil {
		return "", err
	}

	logoURL, err := b.media.FileUpload(file)
	if err != nil {
		return "", err
	}

	update := bson.M{"$set": bson.M{"logo_url": logoURL, "modified_at": time.Now()}}
	if _, err := common.BrandCollection.UpdateOne(ctx, bson.M{"_id": brandID}, update); err != nil {
		return "", err
	}

	internal.PublishCacheMessage(ctx, internal.CacheInvalidateBrand, brandID.Hex())

	return logoURL, nil
}
