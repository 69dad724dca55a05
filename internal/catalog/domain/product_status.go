package domain

import shareddomain "catalog/internal/shared/domain"

// ProductStatus statut de vente d'un produit.
// Cycle de vie: PENDING → ON_SALE → (OUT_OF_STOCK ⇄ ON_SALE) / → DISCONTINUED.
// DISCONTINUED est un état absorbant.
type ProductStatus string

const (
	// StatusPending enregistré mais pas encore en vente
	StatusPending ProductStatus = "PENDING"
	// StatusOnSale actuellement en vente
	StatusOnSale ProductStatus = "ON_SALE"
	// StatusOutOfStock stock épuisé
	StatusOutOfStock ProductStatus = "OUT_OF_STOCK"
	// StatusDiscontinued retiré de la vente
	StatusDiscontinued ProductStatus = "DISCONTINUED"
)

// IsSellable indique si le statut permet la vente
func (s ProductStatus) IsSellable() bool {
	return s == StatusOnSale
}

// Label retourne le libellé affichable du statut
func (s ProductStatus) Label() string {
	switch s {
	case StatusPending:
		return "en attente"
	case StatusOnSale:
		return "en vente"
	case StatusOutOfStock:
		return "épuisé"
	case StatusDiscontinued:
		return "retiré de la vente"
	default:
		return string(s)
	}
}

// ParseProductStatus convertit une valeur stockée en ProductStatus
func ParseProductStatus(value string) (ProductStatus, error) {
	switch status := ProductStatus(value); status {
	case StatusPending, StatusOnSale, StatusOutOfStock, StatusDiscontinued:
		return status, nil
	default:
		return "", shareddomain.NewValidationError("unknown product status: %s", value)
	}
}
