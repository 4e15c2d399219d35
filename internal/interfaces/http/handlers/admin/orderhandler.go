package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/order/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

type OrderHandler struct {
	listOrdersUC  *usecases.ListOrdersUseCase
	getOrderUC    *usecases.GetOrderUseCase
	updateOrderUC *usecases.UpdateOrderUseCase
	deleteOrderUC *usecases.DeleteOrderUseCase
	statsUC       *usecases.GetOrderStatsUseCase
	logger        logger.Interface
}

func NewOrderHandler(
	listOrdersUC *usecases.ListOrdersUseCase,
	getOrderUC *usecases.GetOrderUseCase,
	updateOrderUC *usecases.UpdateOrderUseCase,
	deleteOrderUC *usecases.DeleteOrderUseCase,
	statsUC *usecases.GetOrderStatsUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		listOrdersUC:  listOrdersUC,
		getOrderUC:    getOrderUC,
		updateOrderUC: updateOrderUC,
		deleteOrderUC: deleteOrderUC,
		statsUC:       statsUC,
		logger:        logger,
	}
}

// ListOrders handles GET /admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listOrdersUC.Execute(c.Request.Context(), usecases.ListOrdersQuery{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Search:        c.Query("search"),
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Orders, result.Total, page, pageSize)
}

// GetOrder handles GET /admin/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), usecases.GetOrderQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type updateOrderRequest struct {
	RecipientName *string `json:"recipient_name"`
	Contact       *string `json:"phone_or_contact"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
	TrackingCode  *string `json:"tracking_code"`
	AdminNotes    *string `json:"admin_notes"`
	ServiceFee    *int64  `json:"service_fee"`
}

// UpdateOrder handles PATCH /admin/orders/:id. Only the fields present in
// the body are touched.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateOrderUC.Execute(c.Request.Context(), usecases.UpdateOrderCommand{
		ID:            id,
		RecipientName: req.RecipientName,
		Contact:       req.Contact,
		Address:       req.Address,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		TrackingCode:  req.TrackingCode,
		AdminNotes:    req.AdminNotes,
		ServiceFee:    req.ServiceFee,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", result)
}

// DeleteOrder handles DELETE /admin/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	if err := h.deleteOrderUC.Execute(c.Request.Context(), usecases.DeleteOrderCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetStats handles GET /admin/orders/stats
func (h *OrderHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
