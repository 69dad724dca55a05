package domain

import (
	"strings"
	"unicode/utf8"

	shareddomain "catalog/internal/shared/domain"
)

const (
	productNameMinLength = 2
	productNameMaxLength = 100
)

// ProductName nom d'affichage validé d'un produit.
// Encapsule les règles de validation du nom.
type ProductName struct {
	value string
}

// NewProductName crée un ProductName avec validation (longueur entre 2 et 100 après trim)
func NewProductName(value string) (ProductName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductName{}, shareddomain.NewValidationError("product name is required")
	}
	length := utf8.RuneCountInString(trimmed)
	if length < productNameMinLength {
		return ProductName{}, shareddomain.NewValidationError("product name must be at least %d characters", productNameMinLength)
	}
	if length > productNameMaxLength {
		return ProductName{}, shareddomain.NewValidationError("product name cannot exceed %d characters", productNameMaxLength)
	}
	return ProductName{value: trimmed}, nil
}

// Value retourne le nom
func (n ProductName) Value() string {
	return n.value
}

// IsZero vérifie si le nom est absent
func (n ProductName) IsZero() bool {
	return n.value == ""
}

// Equals compare deux noms par valeur
func (n ProductName) Equals(other ProductName) bool {
	return n.value == other.value
}

func (n ProductName) String() string {
	return n.value
}
