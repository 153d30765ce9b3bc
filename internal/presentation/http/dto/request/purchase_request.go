package request

// CreatePurchaseRequest is the purchase intake form. It binds both JSON and
// multipart; the optional payment document file rides in the multipart form
// under "payment_document".
type CreatePurchaseRequest struct {
	VehicleID       uint    `form:"vehicle_id" json:"vehicle_id"`
	PurchaseDate    string  `form:"purchase_date" json:"purchase_date"`
	PurchasePrice   float64 `form:"purchase_price" json:"purchase_price"`
	PaymentMethodID uint    `form:"payment_method_id" json:"payment_method_id"`
	InvoiceNumber   string  `form:"invoice_number" json:"invoice_number"`
	TaxAmount       float64 `form:"tax_amount" json:"tax_amount"`
	TaxDetails      *string `form:"tax_details" json:"tax_details"`
	Branch          *string `form:"branch" json:"branch"`

	SellerName     string  `form:"seller_name" json:"seller_name"`
	SellerNICOrReg *string `form:"seller_nic_or_reg" json:"seller_nic_or_reg"`
	SellerAddress  string  `form:"seller_address" json:"seller_address"`
	SellerPhone    string  `form:"seller_phone" json:"seller_phone"`
	SellerEmail    *string `form:"seller_email" json:"seller_email"`
	SellerType     string  `form:"seller_type" json:"seller_type"`
}

// UpdatePurchaseRequest is the purchase edit form; nil fields are untouched
type UpdatePurchaseRequest struct {
	PurchaseDate    *string  `form:"purchase_date" json:"purchase_date"`
	PurchasePrice   *float64 `form:"purchase_price" json:"purchase_price"`
	PaymentMethodID *uint    `form:"payment_method_id" json:"payment_method_id"`
	InvoiceNumber   *string  `form:"invoice_number" json:"invoice_number"`
	TaxAmount       *float64 `form:"tax_amount" json:"tax_amount"`
	TaxDetails      *string  `form:"tax_details" json:"tax_details"`
	Branch          *string  `form:"branch" json:"branch"`

	SellerName     *string `form:"seller_name" json:"seller_name"`
	SellerNICOrReg *string `form:"seller_nic_or_reg" json:"seller_nic_or_reg"`
	SellerAddress  *string `form:"seller_address" json:"seller_address"`
	SellerPhone    *string `form:"seller_phone" json:"seller_phone"`
	SellerEmail    *string `form:"seller_email" json:"seller_email"`
	SellerType     *string `form:"seller_type" json:"seller_type"`
}

// TransactionFilterRequest holds the ledger listing query parameters shared
// by purchases, sales and transfers
type TransactionFilterRequest struct {
	VehicleID *uint  `form:"vehicle_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
