package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/order/usecases"
	"anishop/internal/shared/constants"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// Handler serves the public order surface: web placement, tracking and the
// authenticated customer's own orders.
type Handler struct {
	placeOrderUC   *usecases.PlaceOrderUseCase
	trackOrderUC   *usecases.TrackOrderUseCase
	listMyOrdersUC *usecases.ListMyOrdersUseCase
	logger         logger.Interface
}

func NewHandler(
	placeOrderUC *usecases.PlaceOrderUseCase,
	trackOrderUC *usecases.TrackOrderUseCase,
	listMyOrdersUC *usecases.ListMyOrdersUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		placeOrderUC:   placeOrderUC,
		trackOrderUC:   trackOrderUC,
		listMyOrdersUC: listMyOrdersUC,
		logger:         logger,
	}
}

// PlaceOrder handles POST /orders. Guests may order; a logged-in customer
// gets the order attached to their account.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var userID *string
	if id := c.GetString(constants.ContextKeyUserID); id != "" {
		userID = &id
	}

	result, err := h.placeOrderUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order placed successfully")
}

// TrackOrder handles GET /orders/track/:code
func (h *Handler) TrackOrder(c *gin.Context) {
	result, err := h.trackOrderUC.Execute(c.Request.Context(), usecases.TrackOrderQuery{
		OrderCode: c.Param("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMyOrders handles GET /my/orders
func (h *Handler) ListMyOrders(c *gin.Context) {
	userID := c.GetString(constants.ContextKeyUserID)

	result, err := h.listMyOrdersUC.Execute(c.Request.Context(), usecases.ListMyOrdersQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
