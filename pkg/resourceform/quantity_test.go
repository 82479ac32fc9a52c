package resourceform

import (
	"math"
	"testing"

	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
)

func TestFromGonumScalar(t *testing.T) {
	gq, err := gonumform.ParseText("10 nm")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	out, err := FromGonum(gq)
	if err != nil {
		t.Fatalf("FromGonum failed: %v", err)
	}
	rq := out.(*Quantity)

	if rq.Unit != "m" {
		t.Errorf("Unit = %q, want %q", rq.Unit, "m")
	}
	if got := rq.Amount.AsApproximateFloat64(); math.Abs(got-1e-8) > 1e-20 {
		t.Errorf("Amount = %v, want 1e-8", got)
	}
}

func TestFromGonumVector(t *testing.T) {
	gq, err := gonumform.NewVector([]float64{1, 2, 3}, "kJ")
	if err != nil {
		t.Fatalf("NewVector failed: %v", err)
	}

	out, err := FromGonum(gq)
	if err != nil {
		t.Fatalf("FromGonum failed: %v", err)
	}
	rq := out.(*Quantity)

	if !rq.IsVector() || len(rq.Amounts) != 3 {
		t.Fatalf("expected a 3-element vector, got %v", rq)
	}
	if rq.Unit != "kg m^2 s^-2" {
		t.Errorf("Unit = %q, want %q", rq.Unit, "kg m^2 s^-2")
	}
	want := []float64{1000, 2000, 3000}
	for i := range want {
		if got := rq.Amounts[i].AsApproximateFloat64(); math.Abs(got-want[i]) > 1e-9 {
			t.Errorf("Amounts[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestRoundTripThroughGonum(t *testing.T) {
	gq, err := gonumform.ParseText("2.5 kJ")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	mid, err := FromGonum(gq)
	if err != nil {
		t.Fatalf("FromGonum failed: %v", err)
	}
	out, err := ToGonum(mid)
	if err != nil {
		t.Fatalf("ToGonum failed: %v", err)
	}
	back := out.(*gonumform.Quantity)

	if !gonumform.Equal(gq, back) {
		t.Errorf("round trip changed the quantity: %v -> %v", gq, back)
	}
}

func TestConvertersRejectForeignPayloads(t *testing.T) {
	if _, err := FromGonum("10 nm"); err == nil {
		t.Error("FromGonum accepted a string payload")
	}
	if _, err := ToGonum(42); err == nil {
		t.Error("ToGonum accepted an int payload")
	}
}

func TestIsPayload(t *testing.T) {
	if IsPayload("10 nm") || IsPayload(42) {
		t.Error("IsPayload accepted a foreign payload")
	}
	if !IsPayload(&Quantity{}) {
		t.Error("IsPayload rejected a resource quantity")
	}
}
