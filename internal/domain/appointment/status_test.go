package appointment

import (
	"testing"

	"github.com/barbermx/appointment-api/internal/httperr"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		check   func(Status) error
		current Status
		allowed bool
	}{
		{"confirm pending", CanConfirm, StatusPending, true},
		{"confirm confirmed", CanConfirm, StatusConfirmed, false},
		{"confirm completed", CanConfirm, StatusCompleted, false},
		{"confirm cancelled", CanConfirm, StatusCancelled, false},

		{"cancel pending", CanCancel, StatusPending, true},
		{"cancel confirmed", CanCancel, StatusConfirmed, true},
		{"cancel completed", CanCancel, StatusCompleted, false},
		{"cancel cancelled", CanCancel, StatusCancelled, false},

		{"complete pending", CanComplete, StatusPending, false},
		{"complete confirmed", CanComplete, StatusConfirmed, true},
		{"complete completed", CanComplete, StatusCompleted, false},
		{"complete cancelled", CanComplete, StatusCancelled, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.check(c.current)
			if c.allowed && err != nil {
				t.Errorf("expected allowed, got %v", err)
			}
			if !c.allowed && !httperr.IsBusiness(err, "invalid_state") {
				t.Errorf("expected invalid_state, got %v", err)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusConfirmed.Terminal() {
		t.Error("pending/confirmed must not be terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Error("completed/cancelled must be terminal")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, err := ParsePaymentMethod("cash"); err != nil || m != MethodCash {
		t.Errorf("cash: got (%v, %v)", m, err)
	}
	if m, err := ParsePaymentMethod("online"); err != nil || m != MethodOnline {
		t.Errorf("online: got (%v, %v)", m, err)
	}
	if _, err := ParsePaymentMethod("pix"); !httperr.IsBusiness(err, "invalid_payment_method") {
		t.Errorf("pix: expected invalid_payment_method, got %v", err)
	}
}

func TestCanMarkPaid(t *testing.T) {
	if err := CanMarkPaid(PaymentPending); err != nil {
		t.Errorf("pending: unexpected error %v", err)
	}
	if err := CanMarkPaid(PaymentPaid); !httperr.IsBusiness(err, "invalid_payment_state") {
		t.Errorf("paid: expected invalid_payment_state, got %v", err)
	}
	if err := CanMarkPaid(PaymentRefunded); !httperr.IsBusiness(err, "invalid_payment_state") {
		t.Errorf("refunded: expected invalid_payment_state, got %v", err)
	}
}

func TestMapProviderStatus(t *testing.T) {
	cases := map[string]PaymentStatus{
		"approved":     PaymentPaid,
		"refunded":     PaymentRefunded,
		"pending":      PaymentPending,
		"in_process":   PaymentPending,
		"rejected":     PaymentPending,
		"cancelled":    PaymentPending,
		"charged_back": PaymentPending,
	}

	for provider, want := range cases {
		if got := MapProviderStatus(provider); got != want {
			t.Errorf("%s: got %v, want %v", provider, got, want)
		}
	}
}

func TestPaymentRecordStatus(t *testing.T) {
	if got := PaymentRecordStatus(PaymentPaid); got != "completed" {
		t.Errorf("paid: got %q", got)
	}
	if got := PaymentRecordStatus(PaymentRefunded); got != "refunded" {
		t.Errorf("refunded: got %q", got)
	}
	if got := PaymentRecordStatus(PaymentPending); got != "pending" {
		t.Errorf("pending: got %q", got)
	}
}
