package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/setting/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// Handler serves the public site settings: banner, maintenance flag and
// bank transfer details.
type Handler struct {
	getPublicSettingsUC *usecases.GetPublicSettingsUseCase
	logger              logger.Interface
}

func NewHandler(getPublicSettingsUC *usecases.GetPublicSettingsUseCase, logger logger.Interface) *Handler {
	return &Handler{getPublicSettingsUC: getPublicSettingsUC, logger: logger}
}

// GetPublic handles GET /settings/public
func (h *Handler) GetPublic(c *gin.Context) {
	result, err := h.getPublicSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
