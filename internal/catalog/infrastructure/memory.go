package infrastructure

import (
	"sync"

	"catalog/internal/catalog/domain"
)

// MemoryProductRepository implémentation en mémoire de domain.ProductRepository.
// Utilisée par les tests et la démo; mêmes contrats que la version PostgreSQL.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string // préserve l'ordre d'insertion pour les listes
}

// NewMemoryProductRepository crée un repository produit en mémoire
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]*domain.Product),
	}
}

// Save insère ou remplace l'agrégat
func (r *MemoryProductRepository) Save(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := product.ID().Value()
	if _, exists := r.products[key]; !exists {
		r.order = append(r.order, key)
	}
	r.products[key] = product
	return nil
}

// FindByID trouve un produit, (nil, nil) s'il n'existe pas
func (r *MemoryProductRepository) FindByID(id domain.ProductID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.products[id.Value()], nil
}

// FindByCategoryID liste les produits d'une catégorie
func (r *MemoryProductRepository) FindByCategoryID(categoryID domain.CategoryID) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool {
		return p.CategoryID().Equals(categoryID)
	})
}

// FindByStatus liste les produits dans un statut donné
func (r *MemoryProductRepository) FindByStatus(status domain.ProductStatus) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool {
		return p.Status() == status
	})
}

// FindOnSale liste les produits en vente
func (r *MemoryProductRepository) FindOnSale() ([]*domain.Product, error) {
	return r.FindByStatus(domain.StatusOnSale)
}

// FindAll liste tous les produits
func (r *MemoryProductRepository) FindAll() ([]*domain.Product, error) {
	return r.filter(func(*domain.Product) bool { return true })
}

// DeleteByID supprime un produit
func (r *MemoryProductRepository) DeleteByID(id domain.ProductID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.Value()
	delete(r.products, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ExistsByID vérifie l'existence d'un produit
func (r *MemoryProductRepository) ExistsByID(id domain.ProductID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.products[id.Value()]
	return exists, nil
}

// Count retourne le nombre de produits
func (r *MemoryProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) filter(keep func(*domain.Product) bool) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Product
	for _, key := range r.order {
		if product := r.products[key]; keep(product) {
			result = append(result, product)
		}
	}
	return result, nil
}

// MemoryCategoryRepository implémentation en mémoire de domain.CategoryRepository
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category
	order      []string
}

// NewMemoryCategoryRepository crée un repository catégorie en mémoire
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

// Save insère ou remplace l'agrégat
func (r *MemoryCategoryRepository) Save(category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := category.ID().Value()
	if _, exists := r.categories[key]; !exists {
		r.order = append(r.order, key)
	}
	r.categories[key] = category
	return nil
}

// FindByID trouve une catégorie, (nil, nil) si elle n'existe pas
func (r *MemoryCategoryRepository) FindByID(id domain.CategoryID) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.categories[id.Value()], nil
}

// FindRoots liste les catégories racines
func (r *MemoryCategoryRepository) FindRoots() ([]*domain.Category, error) {
	return r.filter(func(c *domain.Category) bool { return c.IsRoot() })
}

// FindByParentID liste les sous-catégories d'un parent
func (r *MemoryCategoryRepository) FindByParentID(parentID domain.CategoryID) ([]*domain.Category, error) {
	return r.filter(func(c *domain.Category) bool {
		parent := c.ParentID()
		return parent != nil && parent.Equals(parentID)
	})
}

// FindActive liste les catégories actives
func (r *MemoryCategoryRepository) FindActive() ([]*domain.Category, error) {
	return r.filter(func(c *domain.Category) bool { return c.IsActive() })
}

// FindAll liste toutes les catégories
func (r *MemoryCategoryRepository) FindAll() ([]*domain.Category, error) {
	return r.filter(func(*domain.Category) bool { return true })
}

// DeleteByID supprime une catégorie
func (r *MemoryCategoryRepository) DeleteByID(id domain.CategoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.Value()
	delete(r.categories, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ExistsByID vérifie l'existence d'une catégorie
func (r *MemoryCategoryRepository) ExistsByID(id domain.CategoryID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.categories[id.Value()]
	return exists, nil
}

func (r *MemoryCategoryRepository) filter(keep func(*domain.Category) bool) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Category
	for _, key := range r.order {
		if category := r.categories[key]; keep(category) {
			result = append(result, category)
		}
	}
	return result, nil
}
