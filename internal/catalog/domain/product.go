package domain

import (
	"fmt"
	"time"

	shareddomain "catalog/internal/shared/domain"
)

// Product est l'Aggregate Root du catalogue.
// Toute modification d'état passe par ses opérations; aucun autre composant
// ne mute directement ses champs. L'agrégat n'est pas thread-safe: l'appelant
// sérialise les accès par instance.
type Product struct {
	id            ProductID
	name          ProductName
	description   string
	price         shareddomain.Money
	stockQuantity shareddomain.Quantity
	categoryID    CategoryID
	status        ProductStatus
	createdAt     time.Time
	updatedAt     time.Time

	// Événements de domaine collectés, vidés par PullDomainEvents
	pendingEvents []DomainEvent
}

// NewProduct crée un nouveau produit (factory).
// Le produit démarre en statut PENDING et collecte un événement ProductCreated.
func NewProduct(name ProductName, description string, price shareddomain.Money,
	stockQuantity shareddomain.Quantity, categoryID CategoryID) (*Product, error) {
	if name.IsZero() {
		return nil, shareddomain.NewValidationError("product name is required")
	}
	if categoryID.IsZero() {
		return nil, shareddomain.NewValidationError("category id is required")
	}

	now := time.Now()
	product := &Product{
		id:            GenerateProductID(),
		name:          name,
		description:   description,
		price:         price,
		stockQuantity: stockQuantity,
		categoryID:    categoryID,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}

	product.registerEvent(newProductCreated(product.id, product.name, product.price, product.stockQuantity))

	return product, nil
}

// ReconstituteProduct restaure un produit existant depuis la persistance.
// Aucun événement n'est émis.
func ReconstituteProduct(id ProductID, name ProductName, description string,
	price shareddomain.Money, stockQuantity shareddomain.Quantity, categoryID CategoryID,
	status ProductStatus, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		stockQuantity: stockQuantity,
		categoryID:    categoryID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// StartSelling démarre la vente du produit.
// Autorisé uniquement depuis PENDING avec un stock positif.
func (p *Product) StartSelling() error {
	if p.status != StatusPending {
		return shareddomain.NewInvalidStateError(
			"selling can only start from status %s, current status: %s", StatusPending, p.status)
	}
	if p.stockQuantity.IsZero() {
		return shareddomain.NewInvalidStateError("cannot start selling without stock")
	}
	p.status = StatusOnSale
	p.updatedAt = time.Now()
	return nil
}

// Discontinue retire le produit de la vente.
// Idempotent: aucun effet si le produit est déjà retiré.
func (p *Product) Discontinue() {
	if p.status == StatusDiscontinued {
		return
	}
	p.status = StatusDiscontinued
	p.updatedAt = time.Now()
}

// ChangePrice remplace le prix du produit.
// Aucun effet (ni mutation ni événement) si le nouveau prix est identique.
func (p *Product) ChangePrice(newPrice shareddomain.Money) {
	if p.price.Equals(newPrice) {
		return
	}
	oldPrice := p.price
	p.price = newPrice
	p.updatedAt = time.Now()
	p.registerEvent(newProductPriceChanged(p.id, oldPrice, newPrice))
}

// AddStock augmente le stock du produit.
// Un produit épuisé repasse en vente dès que le stock redevient positif.
func (p *Product) AddStock(quantity shareddomain.Quantity) {
	previous := p.stockQuantity
	p.stockQuantity = p.stockQuantity.Add(quantity)
	p.updatedAt = time.Now()

	if p.status == StatusOutOfStock && p.stockQuantity.IsPositive() {
		p.status = StatusOnSale
	}

	p.registerEvent(newProductStockChanged(p.id, previous, p.stockQuantity))
}

// DecreaseStock diminue le stock lors d'une vente.
// Exige un statut vendable; échoue si le stock est insuffisant.
// Le stock tombé à zéro fait passer le produit en OUT_OF_STOCK.
func (p *Product) DecreaseStock(quantity shareddomain.Quantity) error {
	if !p.status.IsSellable() {
		return shareddomain.NewInvalidStateError("product is not sellable, current status: %s", p.status)
	}

	// L'état suivant est calculé avant toute mutation: un échec laisse l'agrégat intact
	remaining, err := p.stockQuantity.Subtract(quantity)
	if err != nil {
		return err
	}

	previous := p.stockQuantity
	p.stockQuantity = remaining
	p.updatedAt = time.Now()

	if p.stockQuantity.IsZero() {
		p.status = StatusOutOfStock
	}

	p.registerEvent(newProductStockChanged(p.id, previous, p.stockQuantity))
	return nil
}

// UpdateInfo remplace le nom et la description du produit
func (p *Product) UpdateInfo(name ProductName, description string) error {
	if name.IsZero() {
		return shareddomain.NewValidationError("product name is required")
	}
	p.name = name
	p.description = description
	p.updatedAt = time.Now()
	return nil
}

// ChangeCategory rattache le produit à une autre catégorie
func (p *Product) ChangeCategory(categoryID CategoryID) error {
	if categoryID.IsZero() {
		return shareddomain.NewValidationError("category id is required")
	}
	p.categoryID = categoryID
	p.updatedAt = time.Now()
	return nil
}

// CanOrder vérifie si une quantité peut être commandée.
// Requête pure, sans effet de bord.
func (p *Product) CanOrder(requestedQuantity shareddomain.Quantity) bool {
	return p.status.IsSellable() && p.stockQuantity.IsGreaterThanOrEqual(requestedQuantity)
}

// PullDomainEvents retourne les événements collectés depuis le dernier appel,
// dans l'ordre d'émission, et vide le tampon interne
func (p *Product) PullDomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(p.pendingEvents))
	copy(events, p.pendingEvents)
	p.pendingEvents = p.pendingEvents[:0]
	return events
}

func (p *Product) registerEvent(event DomainEvent) {
	p.pendingEvents = append(p.pendingEvents, event)
}

// ID retourne l'identifiant du produit
func (p *Product) ID() ProductID {
	return p.id
}

// Name retourne le nom du produit
func (p *Product) Name() ProductName {
	return p.name
}

// Description retourne la description du produit
func (p *Product) Description() string {
	return p.description
}

// Price retourne le prix courant
func (p *Product) Price() shareddomain.Money {
	return p.price
}

// StockQuantity retourne le stock courant
func (p *Product) StockQuantity() shareddomain.Quantity {
	return p.stockQuantity
}

// CategoryID retourne la catégorie de rattachement
func (p *Product) CategoryID() CategoryID {
	return p.categoryID
}

// Status retourne le statut courant
func (p *Product) Status() ProductStatus {
	return p.status
}

// CreatedAt retourne la date de création
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt retourne la date de dernière modification
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Equals compare deux produits par identité
func (p *Product) Equals(other *Product) bool {
	return other != nil && p.id.Equals(other.id)
}

func (p *Product) String() string {
	return fmt.Sprintf("Product{id=%s, name=%s, price=%s, status=%s}", p.id, p.name, p.price, p.status)
}
