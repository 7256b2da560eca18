package models

import "testing"

func TestChoiceSetValid(t *testing.T) {
	if !AppointmentStatuses.Valid(AppointmentScheduled) {
		t.Error("expected scheduled to be a valid appointment status")
	}
	if AppointmentStatuses.Valid("rescheduled") {
		t.Error("expected rescheduled to be rejected")
	}
	if !PaymentMethods.Valid(PaymentPix) {
		t.Error("expected pix to be a valid payment method")
	}
	if BloodTypes.Valid("") {
		t.Error("expected empty blood type to be rejected")
	}
}

func TestChoiceSetLabel(t *testing.T) {
	if got := AppointmentStatuses.Label(AppointmentNoShow); got != "No Show" {
		t.Errorf("expected No Show, got %q", got)
	}
	if got := PaymentMethods.Label(PaymentBankSlip); got != "Bank Slip" {
		t.Errorf("expected Bank Slip, got %q", got)
	}
	// Unknown codes fall back to the code itself.
	if got := Genders.Label("X"); got != "X" {
		t.Errorf("expected fallback to code, got %q", got)
	}
}

func TestChoiceSetCodes(t *testing.T) {
	codes := ExpenseCategories.Codes()
	if len(codes) != len(ExpenseCategories) {
		t.Fatalf("expected %d codes, got %d", len(ExpenseCategories), len(codes))
	}
	if codes[0] != "rent" {
		t.Errorf("expected rent first, got %v", codes[0])
	}
}

func TestWeekdayLabel(t *testing.T) {
	if got := WeekdayLabel(0); got != "Monday" {
		t.Errorf("expected Monday, got %q", got)
	}
	if got := WeekdayLabel(6); got != "Sunday" {
		t.Errorf("expected Sunday, got %q", got)
	}
	if got := WeekdayLabel(7); got != "" {
		t.Errorf("expected empty label out of range, got %q", got)
	}
}
