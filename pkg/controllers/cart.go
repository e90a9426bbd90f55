package controllers

import (
	"context"
	"net/http"
	"strconv"

	"loomria-api-io/api/internal/common"
	"loomria-api-io/api/internal/helpers"
	"loomria-api-io/api/pkg/models"
	"loomria-api-io/api/pkg/services"
	"loomria-api-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartController struct {
	cartService services.CartService
}

func InitCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (cc *CartController) SaveCartItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	var req models.CartItemRequest
	if err := c.BindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	itemID, err := cc.cartService.SaveCartItem(ctx, userID, req)
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "cart item saved", itemID)
}

func (cc *CartController) GetCartItems(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	paginationArgs := helpers.GetPaginationArgs(c)
	items, count, err := cc.cartService.GetCartItems(ctx, userID, paginationArgs)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", items, gin.H{
		"pagination": util.Pagination{
			Limit: paginationArgs.Limit,
			Skip:  paginationArgs.Skip,
			Count: count,
		},
	})
}

func (cc *CartController) UpdateCartItemQuantity(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity < 1 {
		util.HandleError(c, http.StatusBadRequest, errMissingQuery("quantity"))
		return
	}

	if err := cc.cartService.UpdateCartItemQuantity(ctx, userID, itemID, quantity); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "cart item quantity updated", nil)
}

func (cc *CartController) DeleteCartItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	deleted, err := cc.cartService.DeleteCartItem(ctx, userID, itemID)
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "cart item deleted", gin.H{"deleted": deleted})
}

func (cc *CartController) ClearCartItems(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	deleted, err := cc.cartService.ClearCartItems(ctx, userID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "cart cleared", gin.H{"deleted": deleted})
}
