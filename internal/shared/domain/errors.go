package domain

import "fmt"

// ValidationError signale une entrée invalide ou hors bornes passée à un
// constructeur ou à une opération du domaine
type ValidationError struct {
	message string
}

// NewValidationError crée une ValidationError avec un message formaté
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.message
}

// InvalidStateError signale une opération tentée alors que l'agrégat
// n'est pas dans un état qui la permet
type InvalidStateError struct {
	message string
}

// NewInvalidStateError crée une InvalidStateError avec un message formaté
func NewInvalidStateError(format string, args ...interface{}) error {
	return &InvalidStateError{message: fmt.Sprintf(format, args...)}
}

func (e *InvalidStateError) Error() string {
	return e.message
}

// NotFoundError signale qu'aucun agrégat n'existe pour un identifiant donné.
// Levée par les accesseurs "get-or-fail" des repositories, jamais par les agrégats.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFoundError crée une NotFoundError pour une entité et un identifiant
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}
