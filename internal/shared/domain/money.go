package domain

import (
	"fmt"
	"math"
)

// MoneyZero montant nul partagé
var MoneyZero = Money{}

// Money représente un montant monétaire entier avec garanties d'invariants.
// Immutable: chaque opération arithmétique retourne une nouvelle instance.
type Money struct {
	amount int64
}

// NewMoney crée une nouvelle instance de Money avec validation
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, NewValidationError("amount cannot be negative: %d", amount)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat crée un Money en arrondissant à l'unité entière (.5 arrondi vers le haut)
func NewMoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, NewValidationError("amount cannot be negative: %v", amount)
	}
	return Money{amount: int64(math.Floor(amount + 0.5))}, nil
}

// MustNewMoney crée un Money en paniquant si invalide
func MustNewMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(fmt.Sprintf("invalid money: %v", err))
	}
	return m
}

// Amount retourne le montant
func (m Money) Amount() int64 {
	return m.amount
}

// Add additionne deux Money
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Subtract soustrait un Money, échoue si le résultat serait négatif
func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount - other.amount
	if result < 0 {
		return Money{}, NewValidationError("resulting amount would be negative: %d - %d", m.amount, other.amount)
	}
	return Money{amount: result}, nil
}

// Multiply multiplie le montant par un entier non négatif
func (m Money) Multiply(multiplier int) (Money, error) {
	if multiplier < 0 {
		return Money{}, NewValidationError("multiplier cannot be negative: %d", multiplier)
	}
	return Money{amount: m.amount * int64(multiplier)}, nil
}

// IsGreaterThan vérifie si le montant est strictement supérieur à un autre
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

// IsLessThanOrEqual vérifie si le montant est inférieur ou égal à un autre
func (m Money) IsLessThanOrEqual(other Money) bool {
	return m.amount <= other.amount
}

// IsZero vérifie si le montant est nul
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Equals compare deux Money par valeur
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
