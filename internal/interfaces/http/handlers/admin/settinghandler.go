package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/setting/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

type SettingHandler struct {
	getAllSettingsUC *usecases.GetAllSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	getAllSettingsUC *usecases.GetAllSettingsUseCase,
	updateSettingsUC *usecases.UpdateSettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getAllSettingsUC: getAllSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

// GetSettings handles GET /admin/settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.getAllSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type updateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// UpdateSettings handles PUT /admin/settings. Keys are upserted one by one;
// a partially failed batch reports the failing keys without rolling back.
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		Settings: req.Settings,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated", result)
}
