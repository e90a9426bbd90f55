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

type AddressController struct {
	addressService services.AddressService
}

func InitAddressController(addressService services.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

func (ac *AddressController) CreateUserAddress(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	var address models.UserAddressExcerpt
	if err := c.BindJSON(&address); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	addressID, err := ac.addressService.CreateUserAddress(ctx, userID, address)
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "address created", addressID)
}

func (ac *AddressController) GetUserAddresses(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	addresses, err := ac.addressService.GetUserAddresses(ctx, userID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", addresses)
}

func (ac *AddressController) UpdateUserAddress(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	addressID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	var address models.UserAddressExcerpt
	if err := c.BindJSON(&address); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	if err := ac.addressService.UpdateUserAddress(ctx, userID, addressID, address); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "address updated", nil)
}

func (ac *AddressController) ChangeDefaultAddress(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	addressID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := ac.addressService.ChangeDefaultAddress(ctx, userID, addressID); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "default address changed", nil)
}

func (ac *AddressController) DeleteUserAddress(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	addressID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := ac.addressService.DeleteUserAddress(ctx, userID, addressID); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "address deleted", nil)
}
