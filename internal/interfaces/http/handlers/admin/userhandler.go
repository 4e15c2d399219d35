package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/user/usecases"
	"anishop/internal/shared/constants"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC  *usecases.ListUsersUseCase
	toggleRoleUC *usecases.ToggleRoleUseCase
	banUserUC    *usecases.BanUserUseCase
	unbanUserUC  *usecases.UnbanUserUseCase
	logger       logger.Interface
}

func NewUserHandler(
	listUsersUC *usecases.ListUsersUseCase,
	toggleRoleUC *usecases.ToggleRoleUseCase,
	banUserUC *usecases.BanUserUseCase,
	unbanUserUC *usecases.UnbanUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:  listUsersUC,
		toggleRoleUC: toggleRoleUC,
		banUserUC:    banUserUC,
		unbanUserUC:  unbanUserUC,
		logger:       logger,
	}
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, page, pageSize)
}

// ToggleRole handles POST /admin/users/:id/role
func (h *UserHandler) ToggleRole(c *gin.Context) {
	result, err := h.toggleRoleUC.Execute(c.Request.Context(), usecases.ToggleRoleCommand{
		UserID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", result)
}

type banUserRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// BanUser handles POST /admin/users/:id/ban
func (h *UserHandler) BanUser(c *gin.Context) {
	var req banUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ban reason is required")
		return
	}

	err := h.banUserUC.Execute(c.Request.Context(), usecases.BanUserCommand{
		UserID:   c.Param("id"),
		Reason:   req.Reason,
		BannedBy: c.GetString(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User banned", nil)
}

// UnbanUser handles DELETE /admin/users/:id/ban
func (h *UserHandler) UnbanUser(c *gin.Context) {
	err := h.unbanUserUC.Execute(c.Request.Context(), usecases.UnbanUserCommand{
		UserID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User unbanned", nil)
}
