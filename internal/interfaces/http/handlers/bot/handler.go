package bot

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderUsecases "anishop/internal/application/order/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// Handler serves the API-key surface the Telegram bot (or any trusted
// client) talks to. Responses for placement use the flat
// {success, order} shape the bot protocol expects.
type Handler struct {
	placeOrderUC *orderUsecases.PlaceOrderUseCase
	getOrderUC   *orderUsecases.GetOrderUseCase
	cleanupUC    *orderUsecases.CleanupCancelledOrdersUseCase
	logger       logger.Interface
}

func NewHandler(
	placeOrderUC *orderUsecases.PlaceOrderUseCase,
	getOrderUC *orderUsecases.GetOrderUseCase,
	cleanupUC *orderUsecases.CleanupCancelledOrdersUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		placeOrderUC: placeOrderUC,
		getOrderUC:   getOrderUC,
		cleanupUC:    cleanupUC,
		logger:       logger,
	}
}

type placeOrderRequest struct {
	ProductLink    string  `json:"product_link"`
	Quantity       int     `json:"quantity"`
	VoucherCode    string  `json:"voucher_code"`
	RecipientName  string  `json:"recipient_name"`
	PhoneOrContact string  `json:"phone_or_contact"`
	Address        string  `json:"address"`
	Email          *string `json:"email"`
	Notes          *string `json:"notes"`
	UserID         *string `json:"user_id"`
}

// PlaceOrder handles POST /bot/orders. Field validation is left to the use
// case so the bot gets the same missing-field reporting as the web surface.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.placeOrderUC.Execute(c.Request.Context(), orderUsecases.PlaceOrderCommand{
		UserID:        req.UserID,
		ProductLink:   req.ProductLink,
		Quantity:      req.Quantity,
		VoucherCode:   req.VoucherCode,
		RecipientName: req.RecipientName,
		Contact:       req.PhoneOrContact,
		Address:       req.Address,
		Email:         req.Email,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"order": gin.H{
			"order_code":  result.OrderCode,
			"id":          result.ID,
			"status":      result.Status,
			"service_fee": result.ServiceFee,
		},
	})
}

// GetOrder handles GET /bot/orders/:code. The bot shows the customer their
// own order, so the view is unmasked.
func (h *Handler) GetOrder(c *gin.Context) {
	result, err := h.getOrderUC.Execute(c.Request.Context(), orderUsecases.GetOrderQuery{
		OrderCode: c.Param("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Cleanup handles POST /bot/cleanup, removing cancelled orders older than
// the retention window. The scheduler runs the same job hourly; this
// endpoint exists for manual triggering.
func (h *Handler) Cleanup(c *gin.Context) {
	result, err := h.cleanupUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cleanup completed", result)
}
