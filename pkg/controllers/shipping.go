package controllers

import (
	"context"
	"net/http"

	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/internal/helpers"
	"loomria-api-io/api/pkg/models"
	"loomria-api-io/api/pkg/services"
	"loomria-api-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingController exposes the brand shipping configuration and the
// per-product shipping step.
type ShippingController struct {
	shippingService services.ShippingService
}

func InitShippingController(shippingService services.ShippingService) *ShippingController {
	return &ShippingController{shippingService: shippingService}
}

// GetBrandShippingConfig returns the brand's configuration, or the schema
// default when the brand has not saved one yet.
func (sc *ShippingController) GetBrandShippingConfig(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	brandID, err := primitive.ObjectIDFromHex(c.Param("brandid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	cfg, err := sc.shippingService.GetBrandShippingConfig(ctx, brandID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	if cfg == nil {
		defaultCfg := models.DefaultShippingConfig()
		defaultCfg.BrandID = brandID
		cfg = &defaultCfg
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", cfg, gin.H{
		"freeShippingExcludedCountries": cfg.FreeShippingExcludedCountries(),
	})
}

// SaveBrandShippingConfig validates and replaces the brand's configuration.
// Violations come back as data with a 422, not as an opaque error, so the
// form can render every problem at once.
func (sc *ShippingController) SaveBrandShippingConfig(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	brandID, err := primitive.ObjectIDFromHex(c.Param("brandid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	var cfg models.ShippingConfig
	if err := c.BindJSON(&cfg); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := sc.shippingService.SaveBrandShippingConfig(ctx, userID, brandID, cfg)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	if len(result.Violations) > 0 {
		util.HandleSuccess(c, http.StatusUnprocessableEntity, "shipping configuration has violations", result)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "shipping configuration saved", result)
}

// GetSelectableShippingOptions returns the method+zone pairs a new product
// may select, with the brand's fees as defaults.
func (sc *ShippingController) GetSelectableShippingOptions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	brandID, err := primitive.ObjectIDFromHex(c.Param("brandid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	options, err := sc.shippingService.GetSelectableShippingOptions(ctx, brandID)
	if err != nil {
		util.HandleError(c, http.StatusNotFound, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", options)
}

// SaveProductShipping persists a product's shipping step after checking it
// against the brand's current configuration.
func (sc *ShippingController) SaveProductShipping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	brandID, err := primitive.ObjectIDFromHex(c.Param("brandid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	var req models.ProductShippingRequest
	if err := c.BindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	selectionID, err := sc.shippingService.SaveProductShipping(ctx, userID, brandID, productID, req)
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "product shipping saved", selectionID)
}

func (sc *ShippingController) GetProductShipping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Param("productid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	selection, err := sc.shippingService.GetProductShipping(ctx, productID)
	if err != nil {
		util.HandleError(c, http.StatusNotFound, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", selection)
}
