package domain

import (
	"time"

	"github.com/google/uuid"

	shareddomain "catalog/internal/shared/domain"
)

// DomainEvent interface de base des événements de domaine.
// Un événement est un enregistrement immuable d'un changement d'état significatif,
// collecté par l'agrégat et consommé via Product.PullDomainEvents.
type DomainEvent interface {
	// EventID identifiant unique de l'événement
	EventID() string
	// OccurredAt horodatage de l'événement, fixé à la construction
	OccurredAt() time.Time
	// EventType nom du type d'événement
	EventType() string
}

// baseEvent porte l'identité et l'horodatage communs à tous les événements
type baseEvent struct {
	eventID    string
	occurredAt time.Time
}

func newBaseEvent() baseEvent {
	return baseEvent{
		eventID:    uuid.NewString(),
		occurredAt: time.Now(),
	}
}

func (e baseEvent) EventID() string {
	return e.eventID
}

func (e baseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// ProductCreated est émis lorsqu'un nouveau produit est enregistré
type ProductCreated struct {
	baseEvent
	productID    ProductID
	name         ProductName
	price        shareddomain.Money
	initialStock shareddomain.Quantity
}

func newProductCreated(productID ProductID, name ProductName,
	price shareddomain.Money, initialStock shareddomain.Quantity) ProductCreated {
	return ProductCreated{
		baseEvent:    newBaseEvent(),
		productID:    productID,
		name:         name,
		price:        price,
		initialStock: initialStock,
	}
}

// EventType retourne le nom du type d'événement
func (e ProductCreated) EventType() string {
	return "product.created"
}

// ProductID retourne l'identifiant du produit créé
func (e ProductCreated) ProductID() ProductID {
	return e.productID
}

// Name retourne le nom du produit créé
func (e ProductCreated) Name() ProductName {
	return e.name
}

// Price retourne le prix initial
func (e ProductCreated) Price() shareddomain.Money {
	return e.price
}

// InitialStock retourne le stock initial
func (e ProductCreated) InitialStock() shareddomain.Quantity {
	return e.initialStock
}

// ProductPriceChanged est émis lorsque le prix d'un produit change
type ProductPriceChanged struct {
	baseEvent
	productID ProductID
	oldPrice  shareddomain.Money
	newPrice  shareddomain.Money
}

func newProductPriceChanged(productID ProductID, oldPrice, newPrice shareddomain.Money) ProductPriceChanged {
	return ProductPriceChanged{
		baseEvent: newBaseEvent(),
		productID: productID,
		oldPrice:  oldPrice,
		newPrice:  newPrice,
	}
}

// EventType retourne le nom du type d'événement
func (e ProductPriceChanged) EventType() string {
	return "product.price_changed"
}

// ProductID retourne l'identifiant du produit concerné
func (e ProductPriceChanged) ProductID() ProductID {
	return e.productID
}

// OldPrice retourne le prix avant changement
func (e ProductPriceChanged) OldPrice() shareddomain.Money {
	return e.oldPrice
}

// NewPrice retourne le prix après changement
func (e ProductPriceChanged) NewPrice() shareddomain.Money {
	return e.newPrice
}

// IsPriceIncrease indique si le prix a augmenté
func (e ProductPriceChanged) IsPriceIncrease() bool {
	return e.newPrice.IsGreaterThan(e.oldPrice)
}

// ProductStockChanged est émis lorsque le stock d'un produit augmente ou diminue
type ProductStockChanged struct {
	baseEvent
	productID        ProductID
	previousQuantity shareddomain.Quantity
	currentQuantity  shareddomain.Quantity
}

func newProductStockChanged(productID ProductID, previousQuantity, currentQuantity shareddomain.Quantity) ProductStockChanged {
	return ProductStockChanged{
		baseEvent:        newBaseEvent(),
		productID:        productID,
		previousQuantity: previousQuantity,
		currentQuantity:  currentQuantity,
	}
}

// EventType retourne le nom du type d'événement
func (e ProductStockChanged) EventType() string {
	return "product.stock_changed"
}

// ProductID retourne l'identifiant du produit concerné
func (e ProductStockChanged) ProductID() ProductID {
	return e.productID
}

// PreviousQuantity retourne le stock avant changement
func (e ProductStockChanged) PreviousQuantity() shareddomain.Quantity {
	return e.previousQuantity
}

// CurrentQuantity retourne le stock après changement
func (e ProductStockChanged) CurrentQuantity() shareddomain.Quantity {
	return e.currentQuantity
}

// IsStockIncreased indique si le stock a augmenté
func (e ProductStockChanged) IsStockIncreased() bool {
	return e.currentQuantity.Value() > e.previousQuantity.Value()
}

// IsStockDecreased indique si le stock a diminué
func (e ProductStockChanged) IsStockDecreased() bool {
	return e.currentQuantity.Value() < e.previousQuantity.Value()
}

// IsOutOfStock indique si le stock est tombé à zéro
func (e ProductStockChanged) IsOutOfStock() bool {
	return e.currentQuantity.IsZero()
}
