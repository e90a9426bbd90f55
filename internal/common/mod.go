package common

import (
	"strings"
	"time"

	"loomria-api-io/api/pkg/util"

	"github.com/go-playground/validator/v10"
)

// Database collections shared across services
var (
	BrandCollection           = util.GetCollection(util.DB, "Brand")
	BrandShippingCollection   = util.GetCollection(util.DB, "BrandShippingConfig")
	ProductCollection         = util.GetCollection(util.DB, "Product")
	ProductShippingCollection = util.GetCollection(util.DB, "ProductShipping")
	UserAddressCollection     = util.GetCollection(util.DB, "UserAddress")
	UserPaymentCardsTable     = util.GetCollection(util.DB, "UserPaymentCards")
	UserCartCollection        = util.GetCollection(util.DB, "UserCart")

	Validate = validator.New()
)

const (
	REQUEST_TIMEOUT_SECS     = 2 * 60 * time.Second
	MONGO_DUPLICATE_KEY_CODE = 11000

	MIN_TITLE_LENGTH = 5
	MAX_TITLE_LENGTH = 140

	DEFAULT_BRAND_LOGO = "https://res.cloudinary.com/loomria/image/upload/v1705607175/loomria/brand-logo-default.png"
)

// IsEmptyString checks if a string is empty
func IsEmptyString(s string) bool {
	return strings.Compare(s, "") == 0
}
