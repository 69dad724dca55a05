package domain

import "fmt"

// QuantityZero quantité nulle partagée
var QuantityZero = Quantity{}

// Quantity représente une quantité avec validation.
// Utilisée pour les stocks et les quantités commandées.
type Quantity struct {
	value int
}

// NewQuantity crée une nouvelle instance de Quantity avec validation
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, NewValidationError("quantity cannot be negative: %d", value)
	}
	return Quantity{value: value}, nil
}

// MustNewQuantity crée une Quantity en paniquant si invalide
func MustNewQuantity(value int) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(fmt.Sprintf("invalid quantity: %v", err))
	}
	return q
}

// Value retourne la valeur
func (q Quantity) Value() int {
	return q.value
}

// Add additionne deux quantités
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// Subtract soustrait une quantité, échoue si le résultat serait négatif
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	result := q.value - other.value
	if result < 0 {
		return Quantity{}, NewValidationError("insufficient quantity: current %d, requested %d", q.value, other.value)
	}
	return Quantity{value: result}, nil
}

// IsGreaterThanOrEqual vérifie si la quantité est supérieure ou égale à une autre
func (q Quantity) IsGreaterThanOrEqual(other Quantity) bool {
	return q.value >= other.value
}

// IsZero vérifie si la quantité est nulle
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// IsPositive vérifie si la quantité est strictement positive
func (q Quantity) IsPositive() bool {
	return q.value > 0
}

// Equals compare deux quantités par valeur
func (q Quantity) Equals(other Quantity) bool {
	return q.value == other.value
}

func (q Quantity) String() string {
	return fmt.Sprintf("%d", q.value)
}
