package auth

import (
	"github.com/gin-gonic/gin"

	"anishop/internal/application/user/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

type Handler struct {
	registerUC *usecases.RegisterUseCase
	loginUC    *usecases.LoginUseCase
	logger     logger.Interface
}

func NewHandler(registerUC *usecases.RegisterUseCase, loginUC *usecases.LoginUseCase, logger logger.Interface) *Handler {
	return &Handler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger,
	}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body: "+err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}
