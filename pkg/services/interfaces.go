package services

import (
	"context"
	"mime/multipart"

	"loomria-api-io/api/pkg/models"
	"loomria-api-io/api/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingConfigSaveResult reports what happened to a brand configuration
// save. Violations non-empty means nothing was written; Changed false means
// the submitted configuration equals the stored one and the write was
// skipped.
type ShippingConfigSaveResult struct {
	Violations []string `json:"violations,omitempty"`
	Saved      bool     `json:"saved"`
	Changed    bool     `json:"changed"`
}

// ShippingService owns the brand-wide shipping configuration and the
// per-product shipping selections derived from it.
type ShippingService interface {
	GetBrandShippingConfig(ctx context.Context, brandID primitive.ObjectID) (*models.ShippingConfig, error)
	SaveBrandShippingConfig(ctx context.Context, userID, brandID primitive.ObjectID, cfg models.ShippingConfig) (*ShippingConfigSaveResult, error)
	GetSelectableShippingOptions(ctx context.Context, brandID primitive.ObjectID) (*models.ShippingOptions, error)

	SaveProductShipping(ctx context.Context, userID, brandID, productID primitive.ObjectID, req models.ProductShippingRequest) (primitive.ObjectID, error)
	GetProductShipping(ctx context.Context, productID primitive.ObjectID) (*models.ProductShipping, error)
}

// BrandService defines the interface for brand onboarding operations
type BrandService interface {
	CheckBrandNameAvailability(ctx context.Context, name string) (bool, error)
	CreateBrand(ctx context.Context, userID primitive.ObjectID, req models.BrandRequest) (primitive.ObjectID, error)
	GetBrand(ctx context.Context, brandIdentifier string) (*models.Brand, error)
	GetBrandByOwnerUserId(ctx context.Context, userID primitive.ObjectID) (*models.Brand, error)
	UpdateBrandInformation(ctx context.Context, brandID, userID primitive.ObjectID, req models.BrandRequest) error
	UpdateBrandLogo(ctx context.Context, brandID, userID primitive.ObjectID, file multipart.File) (string, error)
}

// ProductService defines the interface for product catalog operations
type ProductService interface {
	CreateProduct(ctx context.Context, userID, brandID primitive.ObjectID, req models.ProductRequest) (primitive.ObjectID, error)
	GetProduct(ctx context.Context, productIdentifier string) (*models.Product, error)
	GetBrandProducts(ctx context.Context, brandID primitive.ObjectID, pagination util.PaginationArgs) ([]models.Product, int64, error)
	UpdateProductState(ctx context.Context, userID, productID primitive.ObjectID, state models.ProductState) error
	DeleteProduct(ctx context.Context, userID, productID primitive.ObjectID) error
}

// AddressService defines the interface for user address operations
type AddressService interface {
	CreateUserAddress(ctx context.Context, userID primitive.ObjectID, address models.UserAddressExcerpt) (primitive.ObjectID, error)
	GetUserAddresses(ctx context.Context, userID primitive.ObjectID) ([]models.UserAddress, error)
	UpdateUserAddress(ctx context.Context, userID, addressID primitive.ObjectID, address models.UserAddressExcerpt) error
	ChangeDefaultAddress(ctx context.Context, userID, addressID primitive.ObjectID) error
	DeleteUserAddress(ctx context.Context, userID, addressID primitive.ObjectID) error
}

// PaymentService defines the interface for payment card operations
type PaymentService interface {
	CreatePaymentCard(ctx context.Context, userID primitive.ObjectID, req models.PaymentCardInformationRequest) (primitive.ObjectID, error)
	GetPaymentCards(ctx context.Context, userID primitive.ObjectID) ([]models.PaymentCardInformation, error)
	ChangeDefaultPaymentCard(ctx context.Context, userID, cardID primitive.ObjectID) error
	DeletePaymentCard(ctx context.Context, userID, cardID primitive.ObjectID) error
}

// CartService defines the interface for cart operations
type CartService interface {
	SaveCartItem(ctx context.Context, userID primitive.ObjectID, req models.CartItemRequest) (primitive.ObjectID, error)
	GetCartItems(ctx context.Context, userID primitive.ObjectID, pagination util.PaginationArgs) ([]models.CartItem, int64, error)
	UpdateCartItemQuantity(ctx context.Context, userID, cartItemID primitive.ObjectID, quantity int) error
	DeleteCartItem(ctx context.Context, userID, cartItemID primitive.ObjectID) (int64, error)
	ClearCartItems(ctx context.Context, userID primitive.ObjectID) (int64, error)
}
