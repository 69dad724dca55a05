package domain

import (
	"errors"
	"testing"
)

// ========================================
// Tests: Money (Value Object)
// ========================================

func TestNewMoney_RejectsNegativeAmount(t *testing.T) {
	_, err := NewMoney(-1)
	if err == nil {
		t.Fatal("expected error for negative amount")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestNewMoney_AcceptsZero(t *testing.T) {
	m, err := NewMoney(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsZero() {
		t.Error("expected zero amount")
	}
	if !m.Equals(MoneyZero) {
		t.Error("expected equality with MoneyZero")
	}
}

// TestNewMoneyFromFloat_RoundsHalfUp vérifie l'arrondi à l'unité (.5 vers le haut)
func TestNewMoneyFromFloat_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		input    float64
		expected int64
	}{
		{10.0, 10},
		{10.4, 10},
		{10.5, 11},
		{10.6, 11},
		{0.5, 1},
		{0.49, 0},
	}

	for _, tt := range tests {
		m, err := NewMoneyFromFloat(tt.input)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", tt.input, err)
		}
		if m.Amount() != tt.expected {
			t.Errorf("NewMoneyFromFloat(%v) = %d, expected %d", tt.input, m.Amount(), tt.expected)
		}
	}
}

func TestMoney_Add(t *testing.T) {
	a := MustNewMoney(1000)
	b := MustNewMoney(500)

	sum := a.Add(b)

	if sum.Amount() != 1500 {
		t.Errorf("expected 1500, got %d", sum.Amount())
	}
	// Immutabilité: les opérandes restent inchangés
	if a.Amount() != 1000 || b.Amount() != 500 {
		t.Error("operands must not be mutated")
	}
}

func TestMoney_Subtract(t *testing.T) {
	a := MustNewMoney(1000)
	b := MustNewMoney(300)

	result, err := a.Subtract(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Amount() != 700 {
		t.Errorf("expected 700, got %d", result.Amount())
	}
}

// TestMoney_Subtract_NeverReturnsNegative: soustraire plus que le montant échoue
// toujours avec ValidationError, jamais d'instance négative
func TestMoney_Subtract_NeverReturnsNegative(t *testing.T) {
	a := MustNewMoney(100)
	b := MustNewMoney(200)

	result, err := a.Subtract(b)
	if err == nil {
		t.Fatal("expected error when result would be negative")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
	if result.Amount() < 0 {
		t.Error("must never return a negative-valued instance")
	}
}

func TestMoney_Multiply(t *testing.T) {
	m := MustNewMoney(10000)

	result, err := m.Multiply(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Amount() != 30000 {
		t.Errorf("expected 30000, got %d", result.Amount())
	}
}

func TestMoney_Multiply_RejectsNegativeMultiplier(t *testing.T) {
	m := MustNewMoney(100)

	_, err := m.Multiply(-2)
	if err == nil {
		t.Fatal("expected error for negative multiplier")
	}
}

func TestMoney_Comparisons(t *testing.T) {
	small := MustNewMoney(100)
	big := MustNewMoney(200)

	if !big.IsGreaterThan(small) {
		t.Error("200 must be greater than 100")
	}
	if small.IsGreaterThan(big) {
		t.Error("100 must not be greater than 200")
	}
	if !small.IsLessThanOrEqual(big) {
		t.Error("100 must be less than or equal to 200")
	}
	if !small.IsLessThanOrEqual(MustNewMoney(100)) {
		t.Error("100 must be less than or equal to 100")
	}
}
