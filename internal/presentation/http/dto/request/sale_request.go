package request

// CreateSaleRequest is the sale booking form
type CreateSaleRequest struct {
	VehicleID       uint    `form:"vehicle_id" json:"vehicle_id"`
	SaleDate        string  `form:"sale_date" json:"sale_date"`
	SalePrice       float64 `form:"sale_price" json:"sale_price"`
	Discount        float64 `form:"discount" json:"discount"`
	PaymentMethodID uint    `form:"payment_method_id" json:"payment_method_id"`
	InvoiceNumber   string  `form:"invoice_number" json:"invoice_number"`
	Commission      float64 `form:"commission" json:"commission"`
	SellerID        *uint   `form:"seller_id" json:"seller_id"`

	BuyerName     string `form:"buyer_name" json:"buyer_name"`
	BuyerNICOrReg string `form:"buyer_nic_or_reg" json:"buyer_nic_or_reg"`
	BuyerAddress  string `form:"buyer_address" json:"buyer_address"`
	BuyerPhone    string `form:"buyer_phone" json:"buyer_phone"`
	BuyerEmail    string `form:"buyer_email" json:"buyer_email"`
}

// SaleFilterRequest holds the sales ledger query parameters
type SaleFilterRequest struct {
	VehicleID       *uint  `form:"vehicle_id"`
	StartDate       string `form:"start_date"`
	EndDate         string `form:"end_date"`
	PaymentMethodID *uint  `form:"payment_method_id"`
	Search          string `form:"search"`
	Page            int    `form:"page"`
	PerPage         int    `form:"limit"`
}
