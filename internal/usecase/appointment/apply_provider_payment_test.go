package appointment

import (
	"context"
	"testing"

	"github.com/barbermx/appointment-api/internal/audit"
	"github.com/barbermx/appointment-api/internal/httperr"
)

func TestApplyProviderPaymentApproved(t *testing.T) {
	repo := seedRepo()
	ap := seedAppointment(repo, "pending")
	uc := NewApplyProviderPayment(repo, audit.NewDispatcher(nil))

	got, err := uc.Execute(context.Background(), ApplyProviderPaymentInput{
		AppointmentID:     ap.ID,
		ProviderPaymentID: "12345678",
		ProviderStatus:    "approved",
		Amount:            150,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.PaymentStatus != "paid" {
		t.Errorf("payment status: got %q, want paid", got.PaymentStatus)
	}
	if got.PaymentMethod != "online" {
		t.Errorf("payment method: got %q, want online", got.PaymentMethod)
	}
	if got.PaymentID != "12345678" {
		t.Errorf("payment id: got %q", got.PaymentID)
	}

	if len(repo.payments) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(repo.payments))
	}
	p := repo.payments[0]
	if p.AppointmentID != ap.ID || p.Amount != 150 {
		t.Errorf("ledger row mismatch: %+v", p)
	}
	if p.PaymentProvider != "mercadopago" || p.PaymentProviderID != "12345678" {
		t.Errorf("provider fields mismatch: %+v", p)
	}
	if p.Status != "completed" {
		t.Errorf("ledger status: got %q, want completed", p.Status)
	}
}

func TestApplyProviderPaymentRefunded(t *testing.T) {
	repo := seedRepo()
	ap := seedAppointment(repo, "confirmed")
	uc := NewApplyProviderPayment(repo, audit.NewDispatcher(nil))

	got, err := uc.Execute(context.Background(), ApplyProviderPaymentInput{
		AppointmentID:     ap.ID,
		ProviderPaymentID: "999",
		ProviderStatus:    "refunded",
		Amount:            150,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.PaymentStatus != "refunded" {
		t.Errorf("payment status: got %q, want refunded", got.PaymentStatus)
	}
	if repo.payments[0].Status != "refunded" {
		t.Errorf("ledger status: got %q, want refunded", repo.payments[0].Status)
	}
}

// status desconhecido do provedor fica pendente (não inventa paid)
func TestApplyProviderPaymentUnknownStatus(t *testing.T) {
	repo := seedRepo()
	ap := seedAppointment(repo, "pending")
	uc := NewApplyProviderPayment(repo, audit.NewDispatcher(nil))

	got, err := uc.Execute(context.Background(), ApplyProviderPaymentInput{
		AppointmentID:     ap.ID,
		ProviderPaymentID: "42",
		ProviderStatus:    "in_process",
		Amount:            150,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.PaymentStatus != "pending" {
		t.Errorf("payment status: got %q, want pending", got.PaymentStatus)
	}
}

func TestApplyProviderPaymentUnknownAppointment(t *testing.T) {
	repo := seedRepo()
	uc := NewApplyProviderPayment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), ApplyProviderPaymentInput{
		AppointmentID:  777,
		ProviderStatus: "approved",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("expected appointment_not_found, got %v", err)
	}
}
