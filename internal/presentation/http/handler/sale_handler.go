package handler

import (
	"net/http"

	"github.com/autolanka/vsms-api/internal/application/service"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/request"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/response"
	"github.com/autolanka/vsms-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// defaultSalesPerPage is the ledger page size when the client sends none.
const defaultSalesPerPage = 50

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing the sales ledger
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		PaymentMethodID: filter.PaymentMethodID,
		Search:          filter.Search,
		Pagination:      pagination.NewParams(filter.Page, filter.PerPage, defaultSalesPerPage),
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

	sales, total, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Sales retrieved successfully",
		pagination.NewPageResult(sales, total, params.Pagination))
}

// Get handles retrieving one sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Create handles booking a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateSaleInput{
		VehicleID:       req.VehicleID,
		SalePrice:       req.SalePrice,
		Discount:        req.Discount,
		PaymentMethodID: req.PaymentMethodID,
		InvoiceNumber:   req.InvoiceNumber,
		Commission:      req.Commission,
		SellerID:        req.SellerID,
		Buyer: service.BuyerInput{
			Name:     req.BuyerName,
			NICOrReg: req.BuyerNICOrReg,
			Address:  req.BuyerAddress,
			Phone:    req.BuyerPhone,
			Email:    req.BuyerEmail,
		},
	}
	if date, ok := ParseDate(req.SaleDate); ok {
		input.SaleDate = date
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Statistics handles the sales dashboard aggregates
func (h *SaleHandler) Statistics(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransactionFilterParams{VehicleID: filter.VehicleID}
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

	stats, err := h.saleService.Statistics(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales statistics retrieved successfully", stats)
}
