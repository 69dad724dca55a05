package domain

import shareddomain "catalog/internal/shared/domain"

// ProductRepository contrat de persistance de l'agrégat Product.
// Le domaine définit l'interface, l'infrastructure fournit l'implémentation.
// FindByID retourne (nil, nil) lorsque le produit n'existe pas.
type ProductRepository interface {
	Save(product *Product) error
	FindByID(id ProductID) (*Product, error)
	FindByCategoryID(categoryID CategoryID) ([]*Product, error)
	FindByStatus(status ProductStatus) ([]*Product, error)
	FindOnSale() ([]*Product, error)
	FindAll() ([]*Product, error)
	DeleteByID(id ProductID) error
	ExistsByID(id ProductID) (bool, error)
	Count() (int64, error)
}

// CategoryRepository contrat de persistance de l'agrégat Category.
// FindByID retourne (nil, nil) lorsque la catégorie n'existe pas.
type CategoryRepository interface {
	Save(category *Category) error
	FindByID(id CategoryID) (*Category, error)
	FindRoots() ([]*Category, error)
	FindByParentID(parentID CategoryID) ([]*Category, error)
	FindActive() ([]*Category, error)
	FindAll() ([]*Category, error)
	DeleteByID(id CategoryID) error
	ExistsByID(id CategoryID) (bool, error)
}

// GetProductByID charge un produit, échoue avec NotFoundError s'il n'existe pas
func GetProductByID(repo ProductRepository, id ProductID) (*Product, error) {
	product, err := repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shareddomain.NewNotFoundError("product", id.Value())
	}
	return product, nil
}

// GetCategoryByID charge une catégorie, échoue avec NotFoundError si elle n'existe pas
func GetCategoryByID(repo CategoryRepository, id CategoryID) (*Category, error) {
	category, err := repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, shareddomain.NewNotFoundError("category", id.Value())
	}
	return category, nil
}
