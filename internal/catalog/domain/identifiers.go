package domain

import (
	"strings"

	"github.com/google/uuid"

	shareddomain "catalog/internal/shared/domain"
)

// ProductID identifiant opaque d'un produit.
// L'égalité se fait par valeur du jeton encapsulé, pas par identité.
type ProductID struct {
	value string
}

// GenerateProductID génère un nouvel identifiant de produit unique
func GenerateProductID() ProductID {
	return ProductID{value: uuid.NewString()}
}

// NewProductID crée un ProductID à partir d'une valeur existante
func NewProductID(value string) (ProductID, error) {
	if strings.TrimSpace(value) == "" {
		return ProductID{}, shareddomain.NewValidationError("product id cannot be blank")
	}
	return ProductID{value: value}, nil
}

// Value retourne le jeton encapsulé
func (id ProductID) Value() string {
	return id.value
}

// IsZero vérifie si l'identifiant est absent
func (id ProductID) IsZero() bool {
	return id.value == ""
}

// Equals compare deux identifiants par valeur
func (id ProductID) Equals(other ProductID) bool {
	return id.value == other.value
}

func (id ProductID) String() string {
	return id.value
}

// CategoryID identifiant opaque d'une catégorie
type CategoryID struct {
	value string
}

// GenerateCategoryID génère un nouvel identifiant de catégorie unique
func GenerateCategoryID() CategoryID {
	return CategoryID{value: uuid.NewString()}
}

// NewCategoryID crée un CategoryID à partir d'une valeur existante
func NewCategoryID(value string) (CategoryID, error) {
	if strings.TrimSpace(value) == "" {
		return CategoryID{}, shareddomain.NewValidationError("category id cannot be blank")
	}
	return CategoryID{value: value}, nil
}

// Value retourne le jeton encapsulé
func (id CategoryID) Value() string {
	return id.value
}

// IsZero vérifie si l'identifiant est absent
func (id CategoryID) IsZero() bool {
	return id.value == ""
}

// Equals compare deux identifiants par valeur
func (id CategoryID) Equals(other CategoryID) bool {
	return id.value == other.value
}

func (id CategoryID) String() string {
	return id.value
}
