package request

// CreateTransferRequest is the transfer booking form
type CreateTransferRequest struct {
	VehicleID         uint    `form:"vehicle_id" json:"vehicle_id"`
	FromDealerID      *uint   `form:"from_dealer_id" json:"from_dealer_id"`
	ToDealerID        *uint   `form:"to_dealer_id" json:"to_dealer_id"`
	TransferDate      string  `form:"transfer_date" json:"transfer_date"`
	TransferPrice     float64 `form:"transfer_price" json:"transfer_price"`
	TransportCost     float64 `form:"transport_cost" json:"transport_cost"`
	Status            string  `form:"status" json:"status"`
	ResponsiblePerson *string `form:"responsible_person" json:"responsible_person"`
}

// UpdateTransferRequest is the transfer edit form; nil fields are untouched
type UpdateTransferRequest struct {
	FromDealerID      *uint    `form:"from_dealer_id" json:"from_dealer_id"`
	ToDealerID        *uint    `form:"to_dealer_id" json:"to_dealer_id"`
	TransferDate      *string  `form:"transfer_date" json:"transfer_date"`
	TransferPrice     *float64 `form:"transfer_price" json:"transfer_price"`
	TransportCost     *float64 `form:"transport_cost" json:"transport_cost"`
	Status            *string  `form:"status" json:"status"`
	ResponsiblePerson *string  `form:"responsible_person" json:"responsible_person"`
}

// TransferFilterRequest holds the transfer ledger query parameters
type TransferFilterRequest struct {
	VehicleID    *uint  `form:"vehicle_id"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	FromDealerID *uint  `form:"from_dealer_id"`
	ToDealerID   *uint  `form:"to_dealer_id"`
	Status       string `form:"status"`
}
