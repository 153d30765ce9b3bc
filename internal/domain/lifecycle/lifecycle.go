// Package lifecycle holds the pure rules binding a vehicle's status to the
// three transaction workflows (purchase intake, sale, transfer). Transitions
// whose precondition does not hold are silent no-ops: a ledger entry against
// a vehicle that already left available inventory records the transaction
// without touching the vehicle. Reversal back to Available is an explicit
// admin edit, never automatic.
package lifecycle

import "github.com/autolanka/vsms-api/internal/domain/enum"

// Event identifies the workflow edge triggering a transition.
type Event string

const (
	// EventPurchaseCreated fires when a purchase intake record is created.
	EventPurchaseCreated Event = "purchase_created"
	// EventSaleCreated fires when a sale record is created.
	EventSaleCreated Event = "sale_created"
	// EventTransferCompleted fires when a transfer is created already
	// completed, or when an update crosses the pending -> completed edge.
	EventTransferCompleted Event = "transfer_completed"
)

// transitions maps (event, current status) to the next status. Absent pairs
// are no-ops.
var transitions = map[Event]map[enum.VehicleStatus]enum.VehicleStatus{
	EventPurchaseCreated: {
		enum.VehicleStatusAvailable: enum.VehicleStatusSold,
	},
	EventSaleCreated: {
		enum.VehicleStatusAvailable: enum.VehicleStatusSold,
	},
	EventTransferCompleted: {
		enum.VehicleStatusAvailable: enum.VehicleStatusTransferred,
	},
}

// Next returns the status a vehicle moves to when event fires against the
// given current status. The second return reports whether the status actually
// changes; callers skip the vehicle update when it is false.
func Next(current enum.VehicleStatus, event Event) (enum.VehicleStatus, bool) {
	m, ok := transitions[event]
	if !ok {
		return current, false
	}
	next, ok := m[current]
	if !ok {
		return current, false
	}
	return next, next != current
}

// TransferEffect describes what a completed transfer does to a vehicle.
type TransferEffect struct {
	// NewDealerID is the destination branch. The reassignment applies
	// unconditionally once a transfer completes, regardless of status.
	NewDealerID uint
	// NewStatus and StatusChanged carry the conditional Available ->
	// Transferred edge.
	NewStatus     enum.VehicleStatus
	StatusChanged bool
}

// CompleteTransfer computes the side effects of a transfer reaching the
// completed state with a non-nil destination dealer. It must be applied at
// most once per pending -> completed edge; re-saving an already completed
// transfer must not refire it.
func CompleteTransfer(current enum.VehicleStatus, toDealerID uint) TransferEffect {
	next, changed := Next(current, EventTransferCompleted)
	return TransferEffect{
		NewDealerID:   toDealerID,
		NewStatus:     next,
		StatusChanged: changed,
	}
}

// CrossesCompletion reports whether a transfer update moves from pending to
// completed. Both directions of a no-change save return false, as does the
// (unsupported) completed -> pending reversal.
func CrossesCompletion(before, after enum.TransferStatus) bool {
	return before != enum.TransferStatusCompleted && after == enum.TransferStatusCompleted
}
