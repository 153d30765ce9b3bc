package handler

import (
	"github.com/autolanka/vsms-api/internal/application/service"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/request"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfer-related HTTP requests
type TransferHandler struct {
	transferService *service.TransferService
	dealerService   *service.DealerService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService *service.TransferService, dealerService *service.DealerService) *TransferHandler {
	return &TransferHandler{transferService: transferService, dealerService: dealerService}
}

// List handles listing the transfer ledger
func (h *TransferHandler) List(c *gin.Context) {
	var filter request.TransferFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransferFilterParams{
		FromDealerID: filter.FromDealerID,
		ToDealerID:   filter.ToDealerID,
	}
	params.VehicleID = filter.VehicleID
	if filter.StartDate != "" {
		if date, ok := ParseDate(filter.StartDate); ok {
			params.StartDate = &date
		}
	}
	if filter.EndDate != "" {
		if date, ok := ParseDate(filter.EndDate); ok {
			params.EndDate = &date
		}
	}
	if filter.Status != "" {
		status := enum.TransferStatus(filter.Status)
		if !status.Valid() {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transfers retrieved successfully", transfers)
}

// Get handles retrieving one transfer
func (h *TransferHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid transfer ID")
		return
	}

	transfer, err := h.transferService.GetTransfer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transfer retrieved successfully", transfer)
}

// Create handles booking a transfer
func (h *TransferHandler) Create(c *gin.Context) {
	var req request.CreateTransferRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateTransferInput{
		VehicleID:         req.VehicleID,
		FromDealerID:      req.FromDealerID,
		ToDealerID:        req.ToDealerID,
		TransferPrice:     req.TransferPrice,
		TransportCost:     req.TransportCost,
		Status:            enum.TransferStatus(req.Status),
		ResponsiblePerson: req.ResponsiblePerson,
	}
	if date, ok := ParseDate(req.TransferDate); ok {
		input.TransferDate = date
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transfer recorded successfully", transfer)
}

// Update handles editing a transfer, including completing it
func (h *TransferHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid transfer ID")
		return
	}

	var req request.UpdateTransferRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTransferInput{
		FromDealerID:      req.FromDealerID,
		ToDealerID:        req.ToDealerID,
		TransferPrice:     req.TransferPrice,
		TransportCost:     req.TransportCost,
		ResponsiblePerson: req.ResponsiblePerson,
	}
	if req.TransferDate != nil {
		if date, ok := ParseDate(*req.TransferDate); ok {
			input.TransferDate = &date
		}
	}
	if req.Status != nil {
		status := enum.TransferStatus(*req.Status)
		input.Status = &status
	}

	transfer, err := h.transferService.UpdateTransfer(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transfer updated successfully", transfer)
}

// Delete handles removing a transfer
func (h *TransferHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid transfer ID")
		return
	}

	if err := h.transferService.DeleteTransfer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transfer deleted successfully", nil)
}

// Dealers handles the active branch lookup for transfer forms
func (h *TransferHandler) Dealers(c *gin.Context) {
	dealers, err := h.dealerService.ListActiveDealers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dealers retrieved successfully", dealers)
}
