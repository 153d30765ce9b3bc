package response

import (
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
)

// PurchaseResponse is the camelCase projection of a purchase ledger entry
type PurchaseResponse struct {
	ID              uint                   `json:"id"`
	VehicleID       uint                   `json:"vehicleId"`
	PurchaseDate    string                 `json:"purchaseDate"`
	PurchasePrice   float64                `json:"purchasePrice"`
	PaymentMethodID uint                   `json:"paymentMethodId"`
	InvoiceNumber   string                 `json:"invoiceNumber"`
	TaxAmount       float64                `json:"taxAmount"`
	TaxDetails      *string                `json:"taxDetails,omitempty"`
	Branch          *string                `json:"branch,omitempty"`
	DocumentURL     *string                `json:"documentUrl,omitempty"`
	Vehicle         *VehicleResponse       `json:"vehicle,omitempty"`
	PaymentMethod   *PaymentMethodResponse `json:"paymentMethod,omitempty"`
	Sellers         []SellerResponse       `json:"sellers"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// SellerResponse is the seller summary embedded in purchase projections
type SellerResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	NICOrReg   *string `json:"nicOrReg,omitempty"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Email      *string `json:"email,omitempty"`
	SellerType string  `json:"sellerType"`
}

// PaymentMethodResponse is the payment method summary
type PaymentMethodResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewPurchaseResponse builds the projection for one purchase. The stored
// document path is rewritten to an absolute URL like vehicle images are.
func NewPurchaseResponse(p *entity.CarPurchase, baseURL string) PurchaseResponse {
	resp := PurchaseResponse{
		ID:              p.ID,
		VehicleID:       p.VehicleID,
		PurchaseDate:    p.PurchaseDate.Format("2006-01-02"),
		PurchasePrice:   p.PurchasePrice,
		PaymentMethodID: p.PaymentMethodID,
		InvoiceNumber:   p.InvoiceNumber,
		TaxAmount:       p.TaxAmount,
		TaxDetails:      p.TaxDetails,
		Branch:          p.Branch,
		Sellers:         []SellerResponse{},
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if p.DocumentPath != nil {
		url := AbsoluteImageURL(baseURL, *p.DocumentPath)
		resp.DocumentURL = &url
	}

	if p.Vehicle != nil {
		vehicle := NewVehicleResponse(p.Vehicle, baseURL)
		resp.Vehicle = &vehicle
	}

	if p.PaymentMethod != nil {
		resp.PaymentMethod = &PaymentMethodResponse{
			ID:   p.PaymentMethod.ID,
			Name: p.PaymentMethod.Name,
		}
	}

	for _, s := range p.Sellers {
		resp.Sellers = append(resp.Sellers, SellerResponse{
			ID:         s.ID,
			Name:       s.Name,
			NICOrReg:   s.NICOrReg,
			Address:    s.Address,
			Phone:      s.Phone,
			Email:      s.Email,
			SellerType: string(s.SellerType),
		})
	}

	return resp
}

// NewPurchaseListResponse builds the ledger payload
func NewPurchaseListResponse(purchases []entity.CarPurchase, baseURL string) []PurchaseResponse {
	items := make([]PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		items = append(items, NewPurchaseResponse(&purchases[i], baseURL))
	}
	return items
}
