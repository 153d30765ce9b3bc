package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
)

func TestNewPurchaseResponse(t *testing.T) {
	docPath := "/storage/payment_docs/receipt.pdf"
	purchase := &entity.CarPurchase{
		ID:              3,
		VehicleID:       10,
		PurchaseDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice:   2500000,
		PaymentMethodID: 1,
		InvoiceNumber:   "INV-001",
		DocumentPath:    &docPath,
		PaymentMethod:   &entity.PaymentMethod{ID: 1, Name: "Cash"},
		Sellers: []entity.Seller{
			{ID: 5, Name: "Nimal Perera", Phone: "0771234567", SellerType: enum.SellerTypeIndividual},
		},
	}

	resp := NewPurchaseResponse(purchase, "http://localhost:8080")

	if resp.PurchaseDate != "2026-03-01" {
		t.Errorf("purchaseDate = %q, want 2026-03-01", resp.PurchaseDate)
	}
	if resp.DocumentURL == nil || *resp.DocumentURL != "http://localhost:8080/storage/payment_docs/receipt.pdf" {
		t.Errorf("documentUrl = %v, want the absolute URL", resp.DocumentURL)
	}
	if len(resp.Sellers) != 1 || resp.Sellers[0].Name != "Nimal Perera" {
		t.Errorf("sellers = %+v, want the linked seller", resp.Sellers)
	}
	if resp.PaymentMethod == nil || resp.PaymentMethod.Name != "Cash" {
		t.Errorf("paymentMethod = %+v, want Cash", resp.PaymentMethod)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"purchasePrice"`, `"invoiceNumber"`, `"sellerType"`} {
		if !strings.Contains(string(body), key) {
			t.Errorf("body = %s, want camelCase key %s", body, key)
		}
	}
	if strings.Contains(string(body), `"purchase_price"`) {
		t.Errorf("body = %s, must not expose snake_case keys", body)
	}
}

func TestNewPurchaseResponseEmptySellersSerializesAsArray(t *testing.T) {
	resp := NewPurchaseResponse(&entity.CarPurchase{ID: 1}, "http://localhost:8080")

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"sellers":[]`) {
		t.Errorf("body = %s, want an empty sellers array", body)
	}
	if strings.Contains(string(body), `"documentUrl"`) {
		t.Errorf("body = %s, documentUrl must be absent without an attachment", body)
	}
}
