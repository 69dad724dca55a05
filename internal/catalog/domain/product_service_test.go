package domain

import (
	"errors"
	"testing"

	shareddomain "catalog/internal/shared/domain"
)

func mustOrderItem(t *testing.T, product *Product, quantity int) OrderItem {
	t.Helper()

	item, err := NewOrderItem(product, shareddomain.MustNewQuantity(quantity))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return item
}

// ========================================
// Tests: service de domaine produit
// ========================================

func TestCalculateTotalPrice(t *testing.T) {
	service := NewProductDomainService()
	product := newTestProduct(t, 10000, 50)

	total, err := service.CalculateTotalPrice(product, shareddomain.MustNewQuantity(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total.Amount() != 30000 {
		t.Errorf("expected 30000, got %d", total.Amount())
	}
}

func TestCalculateTotalPrice_RequiresProduct(t *testing.T) {
	service := NewProductDomainService()

	_, err := service.CalculateTotalPrice(nil, shareddomain.MustNewQuantity(1))
	if err == nil {
		t.Fatal("expected error for nil product")
	}
	var validationErr *shareddomain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCalculateOrderTotal(t *testing.T) {
	service := NewProductDomainService()
	first := newTestProduct(t, 10000, 50)
	second := newTestProduct(t, 2500, 50)

	total := service.CalculateOrderTotal([]OrderItem{
		mustOrderItem(t, first, 2),  // 20000
		mustOrderItem(t, second, 4), // 10000
	})

	if total.Amount() != 30000 {
		t.Errorf("expected 30000, got %d", total.Amount())
	}
}

func TestCalculateOrderTotal_EmptyOrderIsZero(t *testing.T) {
	service := NewProductDomainService()

	if total := service.CalculateOrderTotal(nil); !total.IsZero() {
		t.Errorf("expected 0, got %d", total.Amount())
	}
}

func TestApplyDiscount(t *testing.T) {
	service := NewProductDomainService()
	price := shareddomain.MustNewMoney(10000)

	tests := []struct {
		name     string
		percent  int
		expected int64
	}{
		{"sans remise", 0, 10000},
		{"remise classique", 10, 9000},
		{"gratuit", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discounted, err := service.ApplyDiscount(price, tt.percent)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if discounted.Amount() != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, discounted.Amount())
			}
		})
	}
}

func TestApplyDiscount_RejectsInvalidPercent(t *testing.T) {
	service := NewProductDomainService()
	price := shareddomain.MustNewMoney(10000)

	for _, percent := range []int{-1, 101} {
		if _, err := service.ApplyDiscount(price, percent); err == nil {
			t.Errorf("expected error for percent %d", percent)
		}
	}
}

func TestCanOrderAll(t *testing.T) {
	service := NewProductDomainService()
	plenty := newSellingProduct(t, 10000, 50)
	scarce := newSellingProduct(t, 2500, 2)

	orderable := []OrderItem{
		mustOrderItem(t, plenty, 10),
		mustOrderItem(t, scarce, 2),
	}
	if !service.CanOrderAll(orderable) {
		t.Error("expected order to be fulfillable")
	}

	// Une seule ligne au-delà du stock suffit à refuser la commande
	overdrawn := []OrderItem{
		mustOrderItem(t, plenty, 10),
		mustOrderItem(t, scarce, 3),
	}
	if service.CanOrderAll(overdrawn) {
		t.Error("expected order to be rejected")
	}
}

func TestCanOrderAll_EmptyOrder(t *testing.T) {
	service := NewProductDomainService()

	if !service.CanOrderAll(nil) {
		t.Error("an empty order must be trivially fulfillable")
	}
}

func TestNewOrderItem_RequiresProduct(t *testing.T) {
	_, err := NewOrderItem(nil, shareddomain.MustNewQuantity(1))
	if err == nil {
		t.Fatal("expected error for nil product")
	}
	var validationErr *shareddomain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}
