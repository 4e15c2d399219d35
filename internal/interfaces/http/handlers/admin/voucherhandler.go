package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/voucher/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

type VoucherHandler struct {
	createVoucherUC *usecases.CreateVoucherUseCase
	toggleVoucherUC *usecases.ToggleVoucherUseCase
	deleteVoucherUC *usecases.DeleteVoucherUseCase
	listVouchersUC  *usecases.ListVouchersUseCase
	logger          logger.Interface
}

func NewVoucherHandler(
	createVoucherUC *usecases.CreateVoucherUseCase,
	toggleVoucherUC *usecases.ToggleVoucherUseCase,
	deleteVoucherUC *usecases.DeleteVoucherUseCase,
	listVouchersUC *usecases.ListVouchersUseCase,
	logger logger.Interface,
) *VoucherHandler {
	return &VoucherHandler{
		createVoucherUC: createVoucherUC,
		toggleVoucherUC: toggleVoucherUC,
		deleteVoucherUC: deleteVoucherUC,
		listVouchersUC:  listVouchersUC,
		logger:          logger,
	}
}

// ListVouchers handles GET /admin/vouchers, including inactive ones.
func (h *VoucherHandler) ListVouchers(c *gin.Context) {
	result, err := h.listVouchersUC.Execute(c.Request.Context(), usecases.ListVouchersQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type createVoucherRequest struct {
	Code        string `json:"code" binding:"required"`
	VoucherType string `json:"voucher_type" binding:"required"`
	FeeAmount   *int64 `json:"fee_amount"`
	Description string `json:"description"`
}

// CreateVoucher handles POST /admin/vouchers
func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	var req createVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createVoucherUC.Execute(c.Request.Context(), usecases.CreateVoucherCommand{
		Code:        req.Code,
		VoucherType: req.VoucherType,
		FeeAmount:   req.FeeAmount,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Voucher created successfully")
}

type toggleVoucherRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ToggleVoucher handles PATCH /admin/vouchers/:id
func (h *VoucherHandler) ToggleVoucher(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid voucher ID")
		return
	}

	var req toggleVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.toggleVoucherUC.Execute(c.Request.Context(), usecases.ToggleVoucherCommand{
		ID:       id,
		IsActive: *req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Voucher updated successfully", result)
}

// DeleteVoucher handles DELETE /admin/vouchers/:id
func (h *VoucherHandler) DeleteVoucher(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid voucher ID")
		return
	}

	if err := h.deleteVoucherUC.Execute(c.Request.Context(), usecases.DeleteVoucherCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
