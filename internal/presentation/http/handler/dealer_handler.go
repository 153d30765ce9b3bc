package handler

import (
	"github.com/autolanka/vsms-api/internal/application/service"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DealerHandler handles branch-related HTTP requests
type DealerHandler struct {
	dealerService *service.DealerService
}

// NewDealerHandler creates a new dealer handler
func NewDealerHandler(dealerService *service.DealerService) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

// ListActive handles listing the branches selectable on forms
func (h *DealerHandler) ListActive(c *gin.Context) {
	dealers, err := h.dealerService.ListActiveDealers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dealers retrieved successfully", dealers)
}

// ListAll includes inactive branches for historical display
func (h *DealerHandler) ListAll(c *gin.Context) {
	dealers, err := h.dealerService.ListAllDealers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dealers retrieved successfully", dealers)
}

// Get handles retrieving one branch
func (h *DealerHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid dealer ID")
		return
	}

	dealer, err := h.dealerService.GetDealer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dealer retrieved successfully", dealer)
}
