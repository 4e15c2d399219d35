package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/ticket/usecases"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

type TicketHandler struct {
	listTicketsUC   *usecases.ListTicketsUseCase
	resolveTicketUC *usecases.ResolveTicketUseCase
	logger          logger.Interface
}

func NewTicketHandler(
	listTicketsUC *usecases.ListTicketsUseCase,
	resolveTicketUC *usecases.ResolveTicketUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:   listTicketsUC,
		resolveTicketUC: resolveTicketUC,
		logger:          logger,
	}
}

// ListTickets handles GET /admin/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, page, pageSize)
}

type resolveTicketRequest struct {
	AdminNotes *string `json:"admin_notes"`
}

// ResolveTicket handles POST /admin/tickets/:id/resolve
func (h *TicketHandler) ResolveTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket ID")
		return
	}

	var req resolveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), usecases.ResolveTicketCommand{
		ID:         id,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved successfully", result)
}
