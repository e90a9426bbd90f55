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

type PaymentController struct {
	paymentService services.PaymentService
}

func InitPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

func (pc *PaymentController) CreatePaymentCard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	var req models.PaymentCardInformationRequest
	if err := c.BindJSON(&req); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	cardID, err := pc.paymentService.CreatePaymentCard(ctx, userID, req)
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "payment card created", cardID)
}

func (pc *PaymentController) GetPaymentCards(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	cards, err := pc.paymentService.GetPaymentCards(ctx, userID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "success", cards)
}

func (pc *PaymentController) ChangeDefaultPaymentCard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := pc.paymentService.ChangeDefaultPaymentCard(ctx, userID, cardID); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "default payment card changed", nil)
}

func (pc *PaymentController) DeletePaymentCard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
	defer cancel()

	userID, err := helpers.AuthenticatedUserID(c)
	if err != nil {
		util.HandleError(c, http.StatusUnauthorized, err)
		return
	}

	cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := pc.paymentService.DeletePaymentCard(ctx, userID, cardID); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "payment card deleted", nil)
}
