package handler

import (
	"github.com/autolanka/vsms-api/internal/application/service"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/request"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
	storageBaseURL  string
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService, storageBaseURL string) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, storageBaseURL: storageBaseURL}
}

// List handles listing the purchase ledger
func (h *PurchaseHandler) List(c *gin.Context) {
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

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchases retrieved successfully", response.NewPurchaseListResponse(purchases, h.storageBaseURL))
}

// Get handles retrieving one purchase
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", response.NewPurchaseResponse(purchase, h.storageBaseURL))
}

// Create handles booking a purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreatePurchaseInput{
		VehicleID:       req.VehicleID,
		PurchasePrice:   req.PurchasePrice,
		PaymentMethodID: req.PaymentMethodID,
		InvoiceNumber:   req.InvoiceNumber,
		TaxAmount:       req.TaxAmount,
		TaxDetails:      req.TaxDetails,
		Branch:          req.Branch,
		Seller: service.SellerInput{
			Name:       req.SellerName,
			NICOrReg:   req.SellerNICOrReg,
			Address:    req.SellerAddress,
			Phone:      req.SellerPhone,
			Email:      req.SellerEmail,
			SellerType: enum.SellerType(req.SellerType),
		},
	}
	if date, ok := ParseDate(req.PurchaseDate); ok {
		input.PurchaseDate = date
	}
	if file, err := c.FormFile("payment_document"); err == nil {
		input.Document = file
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase recorded successfully", response.NewPurchaseResponse(purchase, h.storageBaseURL))
}

// Update handles editing a purchase
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req request.UpdatePurchaseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePurchaseInput{
		PurchasePrice:   req.PurchasePrice,
		PaymentMethodID: req.PaymentMethodID,
		InvoiceNumber:   req.InvoiceNumber,
		TaxAmount:       req.TaxAmount,
		TaxDetails:      req.TaxDetails,
		Branch:          req.Branch,
	}
	if req.PurchaseDate != nil {
		if date, ok := ParseDate(*req.PurchaseDate); ok {
			input.PurchaseDate = &date
		}
	}
	if req.SellerName != nil || req.SellerPhone != nil {
		seller := &service.SellerInput{
			NICOrReg: req.SellerNICOrReg,
			Email:    req.SellerEmail,
		}
		if req.SellerName != nil {
			seller.Name = *req.SellerName
		}
		if req.SellerAddress != nil {
			seller.Address = *req.SellerAddress
		}
		if req.SellerPhone != nil {
			seller.Phone = *req.SellerPhone
		}
		if req.SellerType != nil {
			seller.SellerType = enum.SellerType(*req.SellerType)
		}
		input.Seller = seller
	}
	if file, err := c.FormFile("payment_document"); err == nil {
		input.Document = file
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase updated successfully", response.NewPurchaseResponse(purchase, h.storageBaseURL))
}

// Delete handles removing a purchase
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase deleted successfully", nil)
}

// PaymentMethods handles the payment method lookup for purchase forms
func (h *PurchaseHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.purchaseService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment methods retrieved successfully", methods)
}

// Branches handles the active branch lookup for purchase forms
func (h *PurchaseHandler) Branches(c *gin.Context) {
	branches, err := h.purchaseService.ListBranches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branches retrieved successfully", branches)
}
