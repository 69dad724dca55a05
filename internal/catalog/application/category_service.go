package application

import (
	"go.uber.org/zap"

	"catalog/internal/catalog/domain"
	shareddomain "catalog/internal/shared/domain"
)

// CategoryService orchestre le cycle de vie des catégories.
// Category est un agrégat plus simple que Product: aucun événement à publier.
type CategoryService struct {
	categories domain.CategoryRepository
	logger     *zap.Logger
}

// NewCategoryService crée un nouveau service applicatif catégorie
func NewCategoryService(categories domain.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger,
	}
}

// CreateCategory crée une catégorie sous un parent existant
func (s *CategoryService) CreateCategory(name, description, parentID string, displayOrder int) (*domain.Category, error) {
	pid, err := domain.NewCategoryID(parentID)
	if err != nil {
		return nil, err
	}
	exists, err := s.categories.ExistsByID(pid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shareddomain.NewNotFoundError("category", pid.Value())
	}

	category, err := domain.NewCategory(name, description, &pid, displayOrder)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("category_id", category.ID().Value()),
		zap.String("name", category.Name()),
		zap.String("parent_id", pid.Value()),
	)
	return category, nil
}

// CreateRootCategory crée une catégorie racine
func (s *CategoryService) CreateRootCategory(name, description string, displayOrder int) (*domain.Category, error) {
	category, err := domain.NewRootCategory(name, description, displayOrder)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}

	s.logger.Info("root category created",
		zap.String("category_id", category.ID().Value()),
		zap.String("name", category.Name()),
	)
	return category, nil
}

// UpdateCategoryInfo remplace le nom et la description d'une catégorie
func (s *CategoryService) UpdateCategoryInfo(id, name, description string) error {
	return s.withCategory(id, func(c *domain.Category) error {
		return c.UpdateInfo(name, description)
	})
}

// ChangeDisplayOrder change l'ordre d'affichage d'une catégorie
func (s *CategoryService) ChangeDisplayOrder(id string, displayOrder int) error {
	return s.withCategory(id, func(c *domain.Category) error {
		return c.ChangeDisplayOrder(displayOrder)
	})
}

// MoveCategory rattache une catégorie à un nouveau parent existant.
// Un parentID vide déplace la catégorie à la racine.
func (s *CategoryService) MoveCategory(id, parentID string) error {
	var newParent *domain.CategoryID
	if parentID != "" {
		pid, err := domain.NewCategoryID(parentID)
		if err != nil {
			return err
		}
		exists, err := s.categories.ExistsByID(pid)
		if err != nil {
			return err
		}
		if !exists {
			return shareddomain.NewNotFoundError("category", pid.Value())
		}
		newParent = &pid
	}
	return s.withCategory(id, func(c *domain.Category) error {
		return c.ChangeParent(newParent)
	})
}

// ActivateCategory active une catégorie
func (s *CategoryService) ActivateCategory(id string) error {
	return s.withCategory(id, func(c *domain.Category) error {
		c.Activate()
		return nil
	})
}

// DeactivateCategory désactive une catégorie
func (s *CategoryService) DeactivateCategory(id string) error {
	return s.withCategory(id, func(c *domain.Category) error {
		c.Deactivate()
		return nil
	})
}

// GetCategory charge une catégorie, échoue si elle n'existe pas
func (s *CategoryService) GetCategory(id string) (*domain.Category, error) {
	cid, err := domain.NewCategoryID(id)
	if err != nil {
		return nil, err
	}
	return domain.GetCategoryByID(s.categories, cid)
}

// ListRoots liste les catégories racines
func (s *CategoryService) ListRoots() ([]*domain.Category, error) {
	return s.categories.FindRoots()
}

// ListChildren liste les sous-catégories d'un parent
func (s *CategoryService) ListChildren(parentID string) ([]*domain.Category, error) {
	pid, err := domain.NewCategoryID(parentID)
	if err != nil {
		return nil, err
	}
	return s.categories.FindByParentID(pid)
}

// ListActive liste les catégories actives
func (s *CategoryService) ListActive() ([]*domain.Category, error) {
	return s.categories.FindActive()
}

// DeleteCategory supprime une catégorie
func (s *CategoryService) DeleteCategory(id string) error {
	cid, err := domain.NewCategoryID(id)
	if err != nil {
		return err
	}
	exists, err := s.categories.ExistsByID(cid)
	if err != nil {
		return err
	}
	if !exists {
		return shareddomain.NewNotFoundError("category", cid.Value())
	}
	return s.categories.DeleteByID(cid)
}

func (s *CategoryService) withCategory(id string, fn func(*domain.Category) error) error {
	cid, err := domain.NewCategoryID(id)
	if err != nil {
		return err
	}
	category, err := domain.GetCategoryByID(s.categories, cid)
	if err != nil {
		return err
	}
	if err := fn(category); err != nil {
		return err
	}
	return s.categories.Save(category)
}
