package domain

import shareddomain "catalog/internal/shared/domain"

// ProductDomainService regroupe la logique de domaine qui n'appartient
// à aucun agrégat en propre, notamment les calculs multi-produits.
// Sans état: toutes les opérations sont des fonctions pures de leurs entrées.
type ProductDomainService struct{}

// NewProductDomainService crée un nouveau service de domaine
func NewProductDomainService() *ProductDomainService {
	return &ProductDomainService{}
}

// CalculateTotalPrice calcule le montant total d'une ligne: prix × quantité, sans remise
func (s *ProductDomainService) CalculateTotalPrice(product *Product, quantity shareddomain.Quantity) (shareddomain.Money, error) {
	if product == nil {
		return shareddomain.MoneyZero, shareddomain.NewValidationError("product is required")
	}
	return product.Price().Multiply(quantity.Value())
}

// CalculateOrderTotal calcule le montant total d'une commande multi-lignes.
// Une commande vide vaut zéro.
func (s *ProductDomainService) CalculateOrderTotal(items []OrderItem) shareddomain.Money {
	total := shareddomain.MoneyZero
	for _, item := range items {
		lineTotal, _ := item.product.Price().Multiply(item.quantity.Value())
		total = total.Add(lineTotal)
	}
	return total
}

// ApplyDiscount applique une remise en pourcentage sur un montant.
// 0% retourne le montant inchangé, 100% retourne zéro, sinon arrondi à l'unité.
func (s *ProductDomainService) ApplyDiscount(originalPrice shareddomain.Money, discountPercent int) (shareddomain.Money, error) {
	if discountPercent < 0 || discountPercent > 100 {
		return shareddomain.MoneyZero, shareddomain.NewValidationError(
			"discount percent must be between 0 and 100: %d", discountPercent)
	}
	if discountPercent == 0 {
		return originalPrice, nil
	}
	if discountPercent == 100 {
		return shareddomain.MoneyZero, nil
	}
	return applyPercent(originalPrice, discountPercent), nil
}

// CanOrderAll vérifie que chaque ligne de la commande est commandable.
// Une commande vide est trivialement commandable.
func (s *ProductDomainService) CanOrderAll(items []OrderItem) bool {
	for _, item := range items {
		if !item.product.CanOrder(item.quantity) {
			return false
		}
	}
	return true
}

// OrderItem associe un produit à une quantité commandée
type OrderItem struct {
	product  *Product
	quantity shareddomain.Quantity
}

// NewOrderItem crée une ligne de commande, échoue si le produit est absent
func NewOrderItem(product *Product, quantity shareddomain.Quantity) (OrderItem, error) {
	if product == nil {
		return OrderItem{}, shareddomain.NewValidationError("order item requires a product")
	}
	return OrderItem{product: product, quantity: quantity}, nil
}

// Product retourne le produit de la ligne
func (i OrderItem) Product() *Product {
	return i.product
}

// Quantity retourne la quantité commandée
func (i OrderItem) Quantity() shareddomain.Quantity {
	return i.quantity
}
