package infrastructure

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"catalog/internal/catalog/domain"
	sharedinfra "catalog/internal/shared/infrastructure"
)

const categorySelectColumns = "id, name, description, parent_id, display_order, active, created_at, updated_at"

// PostgresCategoryRepository implémentation PostgreSQL de domain.CategoryRepository
type PostgresCategoryRepository struct {
	sharedinfra.BaseRepository
	uow sharedinfra.UnitOfWork
}

// NewPostgresCategoryRepository crée un repository catégorie PostgreSQL
func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{
		BaseRepository: sharedinfra.NewBaseRepository(db),
		uow:            sharedinfra.NewUnitOfWork(db),
	}
}

// Save insère ou met à jour l'agrégat dans une transaction
func (r *PostgresCategoryRepository) Save(category *domain.Category) error {
	return r.uow.Execute(func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(r.Context(),
			"SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", category.ID().Value()).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking category existence: %w", err)
		}
		if exists {
			return r.update(tx, category)
		}
		return r.insert(tx, category)
	})
}

func (r *PostgresCategoryRepository) insert(tx *sql.Tx, category *domain.Category) error {
	_, err := psql.Insert("categories").
		SetMap(map[string]interface{}{
			"id":            category.ID().Value(),
			"name":          category.Name(),
			"description":   category.Description(),
			"parent_id":     parentIDValue(category),
			"display_order": category.DisplayOrder(),
			"active":        category.IsActive(),
			"created_at":    category.CreatedAt(),
			"updated_at":    category.UpdatedAt(),
		}).
		RunWith(tx).
		ExecContext(r.Context())
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *PostgresCategoryRepository) update(tx *sql.Tx, category *domain.Category) error {
	res, err := psql.Update("categories").
		Where(squirrel.Eq{"id": category.ID().Value()}).
		SetMap(map[string]interface{}{
			"name":          category.Name(),
			"description":   category.Description(),
			"parent_id":     parentIDValue(category),
			"display_order": category.DisplayOrder(),
			"active":        category.IsActive(),
			"updated_at":    category.UpdatedAt(),
		}).
		RunWith(tx).
		ExecContext(r.Context())
	if err != nil {
		return fmt.Errorf("executing update: %w", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if rowsAffected != 1 {
		return fmt.Errorf("update affected %d rows, but expected exactly 1", rowsAffected)
	}
	return nil
}

// FindByID trouve une catégorie par son identifiant, (nil, nil) si elle n'existe pas
func (r *PostgresCategoryRepository) FindByID(id domain.CategoryID) (*domain.Category, error) {
	query := "SELECT " + categorySelectColumns + " FROM categories WHERE id = $1"
	category, err := scanCategory(r.QueryRow(query, id.Value()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// FindRoots liste les catégories racines, triées par ordre d'affichage
func (r *PostgresCategoryRepository) FindRoots() ([]*domain.Category, error) {
	query := "SELECT " + categorySelectColumns + " FROM categories WHERE parent_id IS NULL ORDER BY display_order"
	return r.queryCategories(query)
}

// FindByParentID liste les sous-catégories d'un parent, triées par ordre d'affichage
func (r *PostgresCategoryRepository) FindByParentID(parentID domain.CategoryID) ([]*domain.Category, error) {
	query := "SELECT " + categorySelectColumns + " FROM categories WHERE parent_id = $1 ORDER BY display_order"
	return r.queryCategories(query, parentID.Value())
}

// FindActive liste les catégories actives
func (r *PostgresCategoryRepository) FindActive() ([]*domain.Category, error) {
	query := "SELECT " + categorySelectColumns + " FROM categories WHERE active ORDER BY display_order"
	return r.queryCategories(query)
}

// FindAll liste toutes les catégories
func (r *PostgresCategoryRepository) FindAll() ([]*domain.Category, error) {
	query := "SELECT " + categorySelectColumns + " FROM categories ORDER BY display_order"
	return r.queryCategories(query)
}

// DeleteByID supprime une catégorie
func (r *PostgresCategoryRepository) DeleteByID(id domain.CategoryID) error {
	_, err := r.Exec("DELETE FROM categories WHERE id = $1", id.Value())
	return err
}

// ExistsByID vérifie l'existence d'une catégorie
func (r *PostgresCategoryRepository) ExistsByID(id domain.CategoryID) (bool, error) {
	var exists bool
	err := r.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", id.Value()).Scan(&exists)
	return exists, err
}

func (r *PostgresCategoryRepository) queryCategories(query string, args ...interface{}) ([]*domain.Category, error) {
	rows, err := r.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// scanCategory reconstitue l'agrégat depuis une ligne
func scanCategory(row rowScanner) (*domain.Category, error) {
	var (
		id, name, description string
		parentID              sql.NullString
		displayOrder          int
		active                bool
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &name, &description, &parentID, &displayOrder, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	categoryID, err := domain.NewCategoryID(id)
	if err != nil {
		return nil, err
	}
	var parent *domain.CategoryID
	if parentID.Valid {
		pid, err := domain.NewCategoryID(parentID.String)
		if err != nil {
			return nil, err
		}
		parent = &pid
	}

	return domain.ReconstituteCategory(categoryID, name, description, parent,
		displayOrder, active, createdAt, updatedAt), nil
}

func parentIDValue(category *domain.Category) interface{} {
	if parent := category.ParentID(); parent != nil {
		return parent.Value()
	}
	return nil
}
