package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/ticket/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

type Handler struct {
	createTicketUC *usecases.CreateTicketUseCase
	logger         logger.Interface
}

func NewHandler(createTicketUC *usecases.CreateTicketUseCase, logger logger.Interface) *Handler {
	return &Handler{createTicketUC: createTicketUC, logger: logger}
}

type CreateTicketRequest struct {
	OrderCode   string  `json:"order_code" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ContactLink string  `json:"contact_link" binding:"required"`
	ImageURL    *string `json:"image_url"`
}

// Create handles POST /tickets. Tickets reference orders by code only, so a
// ticket can be filed even for an order the admin later deletes.
func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		OrderCode:   req.OrderCode,
		Description: req.Description,
		ContactLink: req.ContactLink,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}
