package domain

import (
	"errors"
	"testing"

	shareddomain "catalog/internal/shared/domain"
)

// newTestProduct crée un produit valide pour les tests
func newTestProduct(t *testing.T, price int64, stock int) *Product {
	t.Helper()

	name, err := NewProductName("Casque sans fil")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	product, err := NewProduct(name, "Réduction de bruit active",
		shareddomain.MustNewMoney(price), shareddomain.MustNewQuantity(stock), GenerateCategoryID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return product
}

// newSellingProduct crée un produit déjà en vente
func newSellingProduct(t *testing.T, price int64, stock int) *Product {
	t.Helper()

	product := newTestProduct(t, price, stock)
	if err := product.StartSelling(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	product.PullDomainEvents() // vide l'événement de création
	return product
}

// ========================================
// Tests: création de l'agrégat
// ========================================

func TestNewProduct_StartsPendingWithCreatedEvent(t *testing.T) {
	product := newTestProduct(t, 10000, 5)

	if product.Status() != StatusPending {
		t.Errorf("expected status %s, got %s", StatusPending, product.Status())
	}
	if product.ID().IsZero() {
		t.Error("expected a generated product id")
	}
	if product.CreatedAt().IsZero() || product.UpdatedAt().IsZero() {
		t.Error("expected creation timestamps")
	}

	events := product.PullDomainEvents()
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 pending event, got %d", len(events))
	}
	created, ok := events[0].(ProductCreated)
	if !ok {
		t.Fatalf("expected ProductCreated, got %T", events[0])
	}
	if !created.ProductID().Equals(product.ID()) {
		t.Error("event must carry the product id")
	}
	if created.Price().Amount() != 10000 || created.InitialStock().Value() != 5 {
		t.Error("event must carry initial price and stock")
	}
	if created.EventID() == "" || created.OccurredAt().IsZero() {
		t.Error("event must carry identity and timestamp")
	}
}

func TestNewProduct_RequiresNameAndCategory(t *testing.T) {
	price := shareddomain.MustNewMoney(1000)
	stock := shareddomain.MustNewQuantity(1)
	name, _ := NewProductName("Clavier mécanique")

	if _, err := NewProduct(ProductName{}, "", price, stock, GenerateCategoryID()); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := NewProduct(name, "", price, stock, CategoryID{}); err == nil {
		t.Error("expected error for missing category")
	}
}

// ========================================
// Tests: machine à états
// ========================================

func TestStartSelling_FromPendingWithStock(t *testing.T) {
	product := newTestProduct(t, 10000, 5)
	product.PullDomainEvents()

	if err := product.StartSelling(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Status() != StatusOnSale {
		t.Errorf("expected status %s, got %s", StatusOnSale, product.Status())
	}
	// Asymétrie délibérée: la mise en vente n'émet aucun événement
	if events := product.PullDomainEvents(); len(events) != 0 {
		t.Errorf("start selling must not emit events, got %d", len(events))
	}
}

func TestStartSelling_RejectedWithoutStock(t *testing.T) {
	product := newTestProduct(t, 10000, 0)

	err := product.StartSelling()
	if err == nil {
		t.Fatal("expected error for zero stock")
	}
	var stateErr *shareddomain.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Errorf("expected InvalidStateError, got %T", err)
	}
	if product.Status() != StatusPending {
		t.Error("failed transition must leave status unchanged")
	}
}

func TestStartSelling_RejectedFromNonPendingStatus(t *testing.T) {
	product := newSellingProduct(t, 10000, 5)

	err := product.StartSelling()
	if err == nil {
		t.Fatal("expected error when already on sale")
	}
	var stateErr *shareddomain.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Errorf("expected InvalidStateError, got %T", err)
	}
}

func TestDiscontinue_IsIdempotent(t *testing.T) {
	product := newSellingProduct(t, 10000, 5)

	product.Discontinue()
	if product.Status() != StatusDiscontinued {
		t.Fatalf("expected status %s, got %s", StatusDiscontinued, product.Status())
	}

	// Second appel: aucun effet
	product.Discontinue()
	if product.Status() != StatusDiscontinued {
		t.Error("discontinue must be idempotent")
	}
	if events := product.PullDomainEvents(); len(events) != 0 {
		t.Errorf("discontinue must not emit events, got %d", len(events))
	}
}

// ========================================
// Tests: prix
// ========================================

func TestChangePrice_EmitsEventWithOldAndNewPrice(t *testing.T) {
	product := newTestProduct(t, 10000, 5)
	product.PullDomainEvents()

	product.ChangePrice(shareddomain.MustNewMoney(12000))

	if product.Price().Amount() != 12000 {
		t.Errorf("expected price 12000, got %d", product.Price().Amount())
	}
	events := product.PullDomainEvents()
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(events))
	}
	changed, ok := events[0].(ProductPriceChanged)
	if !ok {
		t.Fatalf("expected ProductPriceChanged, got %T", events[0])
	}
	if changed.OldPrice().Amount() != 10000 || changed.NewPrice().Amount() != 12000 {
		t.Error("event must carry old and new price")
	}
	if !changed.IsPriceIncrease() {
		t.Error("expected a price increase")
	}
}

func TestChangePrice_SamePriceIsNoOp(t *testing.T) {
	product := newTestProduct(t, 10000, 5)
	product.PullDomainEvents()
	before := product.UpdatedAt()

	product.ChangePrice(shareddomain.MustNewMoney(10000))

	if events := product.PullDomainEvents(); len(events) != 0 {
		t.Errorf("same price must not emit events, got %d", len(events))
	}
	if !product.UpdatedAt().Equal(before) {
		t.Error("same price must not touch updatedAt")
	}
}

// ========================================
// Tests: stock
// ========================================

func TestAddStock_AlwaysEmitsStockChanged(t *testing.T) {
	product := newTestProduct(t, 10000, 5)
	product.PullDomainEvents()

	product.AddStock(shareddomain.MustNewQuantity(3))

	if product.StockQuantity().Value() != 8 {
		t.Errorf("expected stock 8, got %d", product.StockQuantity().Value())
	}
	events := product.PullDomainEvents()
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(events))
	}
	changed, ok := events[0].(ProductStockChanged)
	if !ok {
		t.Fatalf("expected ProductStockChanged, got %T", events[0])
	}
	if changed.PreviousQuantity().Value() != 5 || changed.CurrentQuantity().Value() != 8 {
		t.Error("event must carry previous and current quantity")
	}
	if !changed.IsStockIncreased() || changed.IsStockDecreased() {
		t.Error("expected a stock increase")
	}
}

func TestAddStock_RestoresOutOfStockToOnSale(t *testing.T) {
	product := newSellingProduct(t, 10000, 2)

	if err := product.DecreaseStock(shareddomain.MustNewQuantity(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Status() != StatusOutOfStock {
		t.Fatalf("expected status %s, got %s", StatusOutOfStock, product.Status())
	}
	product.PullDomainEvents()

	product.AddStock(shareddomain.MustNewQuantity(1))

	if product.Status() != StatusOnSale {
		t.Errorf("restocking must restore status %s, got %s", StatusOnSale, product.Status())
	}
}

func TestDecreaseStock_ToZeroTransitionsOutOfStock(t *testing.T) {
	product := newSellingProduct(t, 10000, 3)

	if err := product.DecreaseStock(shareddomain.MustNewQuantity(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.Status() != StatusOutOfStock {
		t.Errorf("expected status %s, got %s", StatusOutOfStock, product.Status())
	}
	events := product.PullDomainEvents()
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(events))
	}
	changed := events[0].(ProductStockChanged)
	if !changed.IsOutOfStock() {
		t.Error("event must report out of stock")
	}
}

func TestDecreaseStock_InsufficientStockLeavesAggregateUnchanged(t *testing.T) {
	product := newSellingProduct(t, 10000, 3)

	err := product.DecreaseStock(shareddomain.MustNewQuantity(5))
	if err == nil {
		t.Fatal("expected error for insufficient stock")
	}
	var validationErr *shareddomain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
	if product.StockQuantity().Value() != 3 {
		t.Error("failed operation must leave stock unchanged")
	}
	if product.Status() != StatusOnSale {
		t.Error("failed operation must leave status unchanged")
	}
	if events := product.PullDomainEvents(); len(events) != 0 {
		t.Error("failed operation must not emit events")
	}
}

func TestDecreaseStock_RejectedWhenNotSellable(t *testing.T) {
	product := newTestProduct(t, 10000, 5) // encore PENDING
	product.PullDomainEvents()

	err := product.DecreaseStock(shareddomain.MustNewQuantity(1))
	if err == nil {
		t.Fatal("expected error when not sellable")
	}
	var stateErr *shareddomain.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Errorf("expected InvalidStateError, got %T", err)
	}
	if product.StockQuantity().Value() != 5 {
		t.Error("failed operation must leave stock unchanged")
	}
}

// ========================================
// Tests: requêtes et autres opérations
// ========================================

func TestCanOrder(t *testing.T) {
	product := newSellingProduct(t, 10000, 5)

	if !product.CanOrder(shareddomain.MustNewQuantity(5)) {
		t.Error("must accept an order matching available stock")
	}
	if product.CanOrder(shareddomain.MustNewQuantity(6)) {
		t.Error("must reject an order exceeding available stock")
	}

	product.Discontinue()
	if product.CanOrder(shareddomain.MustNewQuantity(1)) {
		t.Error("a discontinued product must not be orderable")
	}
}

func TestUpdateInfo_And_ChangeCategory(t *testing.T) {
	product := newTestProduct(t, 10000, 5)
	product.PullDomainEvents()

	newName, _ := NewProductName("Casque sans fil v2")
	if err := product.UpdateInfo(newName, "Nouvelle description"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name().Value() != "Casque sans fil v2" || product.Description() != "Nouvelle description" {
		t.Error("update info must replace name and description")
	}

	newCategory := GenerateCategoryID()
	if err := product.ChangeCategory(newCategory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !product.CategoryID().Equals(newCategory) {
		t.Error("change category must replace the category id")
	}

	// Ni l'un ni l'autre n'émet d'événement
	if events := product.PullDomainEvents(); len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestPullDomainEvents_DrainsInEmissionOrder(t *testing.T) {
	product := newTestProduct(t, 10000, 5)

	product.ChangePrice(shareddomain.MustNewMoney(12000))
	product.AddStock(shareddomain.MustNewQuantity(1))

	events := product.PullDomainEvents()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if _, ok := events[0].(ProductCreated); !ok {
		t.Errorf("expected ProductCreated first, got %T", events[0])
	}
	if _, ok := events[1].(ProductPriceChanged); !ok {
		t.Errorf("expected ProductPriceChanged second, got %T", events[1])
	}
	if _, ok := events[2].(ProductStockChanged); !ok {
		t.Errorf("expected ProductStockChanged third, got %T", events[2])
	}

	// Un second drain immédiat est vide
	if again := product.PullDomainEvents(); len(again) != 0 {
		t.Errorf("second pull must be empty, got %d", len(again))
	}
}

func TestReconstituteProduct_EmitsNoEvent(t *testing.T) {
	original := newSellingProduct(t, 10000, 5)

	restored := ReconstituteProduct(original.ID(), original.Name(), original.Description(),
		original.Price(), original.StockQuantity(), original.CategoryID(),
		original.Status(), original.CreatedAt(), original.UpdatedAt())

	if !restored.Equals(original) {
		t.Error("reconstituted product must keep its identity")
	}
	if restored.Status() != StatusOnSale {
		t.Errorf("expected status %s, got %s", StatusOnSale, restored.Status())
	}
	if events := restored.PullDomainEvents(); len(events) != 0 {
		t.Errorf("reconstitution must not emit events, got %d", len(events))
	}
}
