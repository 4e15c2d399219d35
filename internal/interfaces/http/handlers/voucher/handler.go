package voucher

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/voucher/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// Handler serves the public voucher listing. Only active vouchers are ever
// exposed here.
type Handler struct {
	listVouchersUC *usecases.ListVouchersUseCase
	logger         logger.Interface
}

func NewHandler(listVouchersUC *usecases.ListVouchersUseCase, logger logger.Interface) *Handler {
	return &Handler{listVouchersUC: listVouchersUC, logger: logger}
}

// ListActive handles GET /vouchers
func (h *Handler) ListActive(c *gin.Context) {
	result, err := h.listVouchersUC.Execute(c.Request.Context(), usecases.ListVouchersQuery{
		ActiveOnly: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
