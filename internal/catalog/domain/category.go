package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	shareddomain "catalog/internal/shared/domain"
)

const categoryNameMaxLength = 50

// Category est un Aggregate Root séparé du Product.
// Classification hiérarchique des produits, au cycle de vie indépendant.
// Contrairement à Product, Category n'émet pas d'événements de domaine.
type Category struct {
	id           CategoryID
	name         string
	description  string
	parentID     *CategoryID // nil pour une catégorie racine
	displayOrder int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCategory crée une nouvelle catégorie (factory).
// La catégorie est active à la création.
func NewCategory(name, description string, parentID *CategoryID, displayOrder int) (*Category, error) {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}
	if displayOrder < 0 {
		return nil, shareddomain.NewValidationError("display order cannot be negative: %d", displayOrder)
	}

	now := time.Now()
	return &Category{
		id:           GenerateCategoryID(),
		name:         trimmed,
		description:  description,
		parentID:     cloneCategoryID(parentID),
		displayOrder: displayOrder,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewRootCategory crée une catégorie racine (sans parent)
func NewRootCategory(name, description string, displayOrder int) (*Category, error) {
	return NewCategory(name, description, nil, displayOrder)
}

// ReconstituteCategory restaure une catégorie existante depuis la persistance
func ReconstituteCategory(id CategoryID, name, description string, parentID *CategoryID,
	displayOrder int, active bool, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:           id,
		name:         name,
		description:  description,
		parentID:     cloneCategoryID(parentID),
		displayOrder: displayOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func validateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", shareddomain.NewValidationError("category name is required")
	}
	if utf8.RuneCountInString(trimmed) > categoryNameMaxLength {
		return "", shareddomain.NewValidationError("category name cannot exceed %d characters", categoryNameMaxLength)
	}
	return trimmed, nil
}

// UpdateInfo remplace le nom et la description de la catégorie
func (c *Category) UpdateInfo(name, description string) error {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return err
	}
	c.name = trimmed
	c.description = description
	c.updatedAt = time.Now()
	return nil
}

// ChangeDisplayOrder change l'ordre d'affichage (refuse un ordre négatif)
func (c *Category) ChangeDisplayOrder(displayOrder int) error {
	if displayOrder < 0 {
		return shareddomain.NewValidationError("display order cannot be negative: %d", displayOrder)
	}
	c.displayOrder = displayOrder
	c.updatedAt = time.Now()
	return nil
}

// ChangeParent rattache la catégorie à un nouveau parent (nil pour racine).
// Une catégorie ne peut pas être son propre parent.
func (c *Category) ChangeParent(parentID *CategoryID) error {
	if parentID != nil && parentID.Equals(c.id) {
		return shareddomain.NewValidationError("category cannot be its own parent: %s", c.id)
	}
	c.parentID = cloneCategoryID(parentID)
	c.updatedAt = time.Now()
	return nil
}

// Activate active la catégorie
func (c *Category) Activate() {
	c.active = true
	c.updatedAt = time.Now()
}

// Deactivate désactive la catégorie
func (c *Category) Deactivate() {
	c.active = false
	c.updatedAt = time.Now()
}

// IsRoot indique si la catégorie est une racine (sans parent)
func (c *Category) IsRoot() bool {
	return c.parentID == nil
}

// ID retourne l'identifiant de la catégorie
func (c *Category) ID() CategoryID {
	return c.id
}

// Name retourne le nom de la catégorie
func (c *Category) Name() string {
	return c.name
}

// Description retourne la description
func (c *Category) Description() string {
	return c.description
}

// ParentID retourne l'identifiant du parent, nil pour une racine
func (c *Category) ParentID() *CategoryID {
	return cloneCategoryID(c.parentID)
}

// DisplayOrder retourne l'ordre d'affichage
func (c *Category) DisplayOrder() int {
	return c.displayOrder
}

// IsActive indique si la catégorie est active
func (c *Category) IsActive() bool {
	return c.active
}

// CreatedAt retourne la date de création
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt retourne la date de dernière modification
func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// Equals compare deux catégories par identité
func (c *Category) Equals(other *Category) bool {
	return other != nil && c.id.Equals(other.id)
}

func (c *Category) String() string {
	return fmt.Sprintf("Category{id=%s, name=%s, active=%t}", c.id, c.name, c.active)
}

func cloneCategoryID(id *CategoryID) *CategoryID {
	if id == nil {
		return nil
	}
	clone := *id
	return &clone
}
