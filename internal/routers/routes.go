package routers

import (
	"loomria-api-io/api/internal/container"
	"loomria-api-io/api/internal/middleware"
	"loomria-api-io/api/pkg/controllers"

	"github.com/gin-gonic/gin"
)

// InitRoute creates a new Gin router with the service layer wired in.
func InitRoute() *gin.Engine {
	serviceContainer := container.NewServiceContainer()
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/v1", middleware.LoomriaRateLimiter())
	{
		api.GET("/ping", controllers.Ping)

		brandRoutes(api, serviceContainer)
		productRoutes(api, serviceContainer)
		userRoutes(api, serviceContainer)
	}

	return router
}

// brandRoutes configures brand onboarding, brand shipping configuration and
// brand catalog endpoints.
func brandRoutes(api *gin.RouterGroup, serviceContainer *container.ServiceContainer) {
	brandController := serviceContainer.GetBrandController()
	productController := serviceContainer.GetProductController()
	shippingController := serviceContainer.GetShippingController()

	brand := api.Group("/brands")

	brand.GET("/check", brandController.CheckBrandNameAvailability)
	brand.POST("", brandController.CreateBrand)
	brand.GET("/:brandid", brandController.GetBrand)
	brand.PUT("/:brandid/information", brandController.UpdateBrandInformation)
	brand.PUT("/:brandid/logo", brandController.UploadBrandLogo)

	// Brand-wide shipping configuration
	brand.GET("/:brandid/shipping", shippingController.GetBrandShippingConfig)
	brand.PUT("/:brandid/shipping", shippingController.SaveBrandShippingConfig)
	brand.GET("/:brandid/shipping/options", shippingController.GetSelectableShippingOptions)

	// Brand catalog
	brand.POST("/:brandid/products", productController.CreateProduct)
	brand.GET("/:brandid/products", productController.GetBrandProducts)
	brand.PUT("/:brandid/products/:productid/shipping", shippingController.SaveProductShipping)
}

// productRoutes configures product detail and per-product shipping endpoints.
func productRoutes(api *gin.RouterGroup, serviceContainer *container.ServiceContainer) {
	productController := serviceContainer.GetProductController()
	shippingController := serviceContainer.GetShippingController()

	product := api.Group("/products")

	product.GET("/:productid", productController.GetProduct)
	product.PUT("/:productid/state", productController.UpdateProductState)
	product.DELETE("/:productid", productController.DeleteProduct)

	product.GET("/:productid/shipping", shippingController.GetProductShipping)
}

// userRoutes configures buyer-side endpoints for addresses, payment cards and
// the cart.
func userRoutes(api *gin.RouterGroup, serviceContainer *container.ServiceContainer) {
	brandController := serviceContainer.GetBrandController()
	addressController := serviceContainer.GetAddressController()
	paymentController := serviceContainer.GetPaymentController()
	cartController := serviceContainer.GetCartController()

	user := api.Group("/users")

	user.GET("/:userid/brand", brandController.GetBrandByOwner)

	// Address management
	user.POST("/:userid/addresses", addressController.CreateUserAddress)
	user.GET("/:userid/addresses", addressController.GetUserAddresses)
	user.PUT("/:userid/addresses/:id", addressController.UpdateUserAddress)
	user.PUT("/:userid/addresses/:id/default", addressController.ChangeDefaultAddress)
	user.DELETE("/:userid/addresses/:id", addressController.DeleteUserAddress)

	// Payment cards
	payment := user.Group("/:userid/payment/cards")
	payment.POST("", paymentController.CreatePaymentCard)
	payment.GET("", paymentController.GetPaymentCards)
	payment.PUT("/:id/default", paymentController.ChangeDefaultPaymentCard)
	payment.DELETE("/:id", paymentController.DeletePaymentCard)

	// Cart
	cart := user.Group("/:userid/cart")
	cart.POST("", cartController.SaveCartItem)
	cart.GET("", cartController.GetCartItems)
	cart.PUT("/:id", cartController.UpdateCartItemQuantity)
	cart.DELETE("/:id", cartController.DeleteCartItem)
	cart.DELETE("", cartController.ClearCartItems)
}
