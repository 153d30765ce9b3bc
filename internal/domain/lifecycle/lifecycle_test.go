package lifecycle

import (
	"testing"

	"github.com/autolanka/vsms-api/internal/domain/enum"
)

func TestNextPurchase(t *testing.T) {
	tests := []struct {
		name    string
		current enum.VehicleStatus
		want    enum.VehicleStatus
		changed bool
	}{
		{"available is removed from inventory", enum.VehicleStatusAvailable, enum.VehicleStatusSold, true},
		{"already sold is a no-op", enum.VehicleStatusSold, enum.VehicleStatusSold, false},
		{"reserved is a no-op", enum.VehicleStatusReserved, enum.VehicleStatusReserved, false},
		{"transferred is a no-op", enum.VehicleStatusTransferred, enum.VehicleStatusTransferred, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Next(tt.current, EventPurchaseCreated)
			if got != tt.want || changed != tt.changed {
				t.Fatalf("Next(%s, purchase) = (%s, %v), want (%s, %v)", tt.current, got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestNextIsIdempotentUnsafe(t *testing.T) {
	// A second purchase against a non-available vehicle must neither change
	// status nor error.
	status, changed := Next(enum.VehicleStatusAvailable, EventPurchaseCreated)
	if !changed {
		t.Fatalf("first purchase should change status")
	}
	status, changed = Next(status, EventPurchaseCreated)
	if changed {
		t.Fatalf("second purchase should be a no-op, moved to %s", status)
	}
	if status != enum.VehicleStatusSold {
		t.Fatalf("status drifted to %s", status)
	}
}

func TestNextUnknownEvent(t *testing.T) {
	got, changed := Next(enum.VehicleStatusAvailable, Event("repaint"))
	if changed || got != enum.VehicleStatusAvailable {
		t.Fatalf("unknown event must be a no-op, got (%s, %v)", got, changed)
	}
}

func TestCompleteTransfer(t *testing.T) {
	tests := []struct {
		name          string
		current       enum.VehicleStatus
		statusChanged bool
		wantStatus    enum.VehicleStatus
	}{
		{"available becomes transferred", enum.VehicleStatusAvailable, true, enum.VehicleStatusTransferred},
		{"sold keeps status but moves branch", enum.VehicleStatusSold, false, enum.VehicleStatusSold},
		{"transferred can chain branch moves", enum.VehicleStatusTransferred, false, enum.VehicleStatusTransferred},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := CompleteTransfer(tt.current, 7)
			if eff.NewDealerID != 7 {
				t.Fatalf("dealer reassignment must be unconditional, got %d", eff.NewDealerID)
			}
			if eff.StatusChanged != tt.statusChanged || eff.NewStatus != tt.wantStatus {
				t.Fatalf("CompleteTransfer(%s) = (%s, %v), want (%s, %v)",
					tt.current, eff.NewStatus, eff.StatusChanged, tt.wantStatus, tt.statusChanged)
			}
		})
	}
}

func TestCrossesCompletion(t *testing.T) {
	tests := []struct {
		before, after enum.TransferStatus
		want          bool
	}{
		{enum.TransferStatusPending, enum.TransferStatusCompleted, true},
		{enum.TransferStatusCompleted, enum.TransferStatusCompleted, false},
		{enum.TransferStatusPending, enum.TransferStatusPending, false},
		{enum.TransferStatusCompleted, enum.TransferStatusPending, false},
	}

	for _, tt := range tests {
		if got := CrossesCompletion(tt.before, tt.after); got != tt.want {
			t.Fatalf("CrossesCompletion(%s, %s) = %v, want %v", tt.before, tt.after, got, tt.want)
		}
	}
}
