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

type ProductController struct {
	productService services.ProductService
}

func InitProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
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

	var req models.ProductRequest
	if err := c.BindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	productID, err := pc.productService.CreateProduct(ctx, userID, brandID, req)
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "product created", productID)
}

// GetProduct accepts a product hex id or slug.
func (pc *ProductController) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	product, err := pc.productService.GetProduct(ctx, c.Param("productid"))
	if err != nil {
		util.HandleError(c, http.StatusNotFound, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", product)
}

func (pc *ProductController) GetBrandProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	brandID, err := primitive.ObjectIDFromHex(c.Param("brandid"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	paginationArgs := helpers.GetPaginationArgs(c)
	products, count, err := pc.productService.GetBrandProducts(ctx, brandID, paginationArgs)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", products, gin.H{
		"pagination": util.Pagination{
			Limit: paginationArgs.Limit,
			Skip:  paginationArgs.Skip,
			Count: count,
		},
	})
}

func (pc *ProductController) UpdateProductState(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

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

	var body struct {
		State models.ProductState `json:"state" validate:"required,oneof=draft active soldout deactivated"`
	}
	if err := c.BindJSON(&body); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}
	if err := common.Validate.Struct(&body); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := pc.productService.UpdateProductState(ctx, userID, productID, body.State); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "product state updated", nil)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

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

	if err := pc.productService.DeleteProduct(ctx, userID, productID); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "product deleted", nil)
}
