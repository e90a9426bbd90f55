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

type BrandController struct {
	brandService services.BrandService
}

func InitBrandController(brandService services.BrandService) *BrandController {
	return &BrandController{brandService: brandService}
}

func (bc *BrandController) CheckBrandNameAvailability(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	name := c.Query("name")
	if common.IsEmptyString(name) {
		util.HandleError(c, http.StatusBadRequest, errMissingQuery("name"))
		return
	}

	available, err := bc.brandService.CheckBrandNameAvailability(ctx, name)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", gin.H{"available": available})
}

func (bc *BrandController) CreateBrand(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	var req models.BrandRequest
	if err := c.BindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	brandID, err := bc.brandService.CreateBrand(ctx, userID, req)
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "brand created", brandID)
}

// GetBrand accepts a brand hex id or slug.
func (bc *BrandController) GetBrand(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	brand, err := bc.brandService.GetBrand(ctx, c.Param("brandid"))
	if err != nil {
		util.HandleError(c, http.StatusNotFound, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", brand)
}

// GetBrandByOwner returns the brand owned by the given user, for the seller
// dashboard entry point.
func (bc *BrandController) GetBrandByOwner(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Param("userid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	brand, err := bc.brandService.GetBrandByOwnerUserId(ctx, userID)
	if err != nil {
		util.HandleError(c, http.StatusNotFound, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", brand)
}

func (bc *BrandController) UpdateBrandInformation(c *gin.Context) {
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

	var req models.BrandRequest
	if err := c.BindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := bc.brandService.UpdateBrandInformation(ctx, brandID, userID, req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "brand updated", nil)
}

func (bc *BrandController) UploadBrandLogo(c *gin.Context) {
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

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	logoURL, err := bc.brandService.UpdateBrandLogo(ctx, brandID, userID, file)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "logo uploaded", gin.H{"logoUrl": logoURL})
}
