package container

import (
	"loomria-api-io/api/pkg/controllers"
	"loomria-api-io/api/pkg/services"
)

type ServiceContainer struct {
	BrandService    services.BrandService
	ProductService  services.ProductService
	ShippingService services.ShippingService
	AddressService  services.AddressService
	PaymentService  services.PaymentService
	CartService     services.CartService

	BrandController    *controllers.BrandController
	ProductController  *controllers.ProductController
	ShippingController *controllers.ShippingController
	AddressController  *controllers.AddressController
	PaymentController  *controllers.PaymentController
	CartController     *controllers.CartController
}

func NewServiceContainer() *ServiceContainer {
	brandService := services.NewBrandService()
	productService := services.NewProductService()
	shippingService := services.NewShippingService()
	addressService := services.NewAddressService()
	paymentService := services.NewPaymentService()
	cartService := services.NewCartService()

	brandController := controllers.InitBrandController(brandService)
	productController := controllers.InitProductController(productService)
	shippingController := controllers.InitShippingController(shippingService)
	addressController := controllers.InitAddressController(addressService)
	paymentController := controllers.InitPaymentController(paymentService)
	cartController := controllers.InitCartController(cartService)

	return &ServiceContainer{
		BrandService:    brandService,
		ProductService:  productService,
		ShippingService: shippingService,
		AddressService:  addressService,
		PaymentService:  paymentService,
		CartService:     cartService,

		BrandController:    brandController,
		ProductController:  productController,
		ShippingController: shippingController,
		AddressController:  addressController,
		PaymentController:  paymentController,
		CartController:     cartController,
	}
}

// GetBrandController returns the brand controller instance
func (sc *ServiceContainer) GetBrandController() *controllers.BrandController {
	return sc.BrandController
}

// GetProductController returns the product controller instance
func (sc *ServiceContainer) GetProductController() *controllers.ProductController {
	return sc.ProductController
}

// GetShippingController returns the shipping controller instance
func (sc *ServiceContainer) GetShippingController() *controllers.ShippingController {
	return sc.ShippingController
}

// GetAddressController returns the address controller instance
func (sc *ServiceContainer) GetAddressController() *controllers.AddressController {
	return sc.AddressController
}

// GetPaymentController returns the payment controller instance
func (sc *ServiceContainer) GetPaymentController() *controllers.PaymentController {
	return sc.PaymentController
}

// GetCartController returns the cart controller instance
func (sc *ServiceContainer) GetCartController() *controllers.CartController {
	return sc.CartController
}
