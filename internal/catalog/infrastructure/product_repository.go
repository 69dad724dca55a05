package infrastructure

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"catalog/internal/catalog/domain"
	shareddomain "catalog/internal/shared/domain"
	sharedinfra "catalog/internal/shared/infrastructure"
)

// psql constructeur de requêtes avec placeholders PostgreSQL ($1, $2...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const productSelectColumns = "id, name, description, price, stock_quantity, category_id, status, created_at, updated_at"

// PostgresProductRepository implémentation PostgreSQL de domain.ProductRepository.
// Les écritures passent par le UnitOfWork: une transaction par agrégat par opération.
type PostgresProductRepository struct {
	sharedinfra.BaseRepository
	uow sharedinfra.UnitOfWork
}

// NewPostgresProductRepository crée un repository produit PostgreSQL
func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{
		BaseRepository: sharedinfra.NewBaseRepository(db),
		uow:            sharedinfra.NewUnitOfWork(db),
	}
}

// Save insère ou met à jour l'agrégat dans une transaction
func (r *PostgresProductRepository) Save(product *domain.Product) error {
	return r.uow.Execute(func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(r.Context(),
			"SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)", product.ID().Value()).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking product existence: %w", err)
		}
		if exists {
			return r.update(tx, product)
		}
		return r.insert(tx, product)
	})
}

func (r *PostgresProductRepository) insert(tx *sql.Tx, product *domain.Product) error {
	_, err := psql.Insert("products").
		SetMap(map[string]interface{}{
			"id":             product.ID().Value(),
			"name":           product.Name().Value(),
			"description":    product.Description(),
			"price":          product.Price().Amount(),
			"stock_quantity": product.StockQuantity().Value(),
			"category_id":    product.CategoryID().Value(),
			"status":         string(product.Status()),
			"created_at":     product.CreatedAt(),
			"updated_at":     product.UpdatedAt(),
		}).
		RunWith(tx).
		ExecContext(r.Context())
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func (r *PostgresProductRepository) update(tx *sql.Tx, product *domain.Product) error {
	res, err := psql.Update("products").
		Where(squirrel.Eq{"id": product.ID().Value()}).
		SetMap(map[string]interface{}{
			"name":           product.Name().Value(),
			"description":    product.Description(),
			"price":          product.Price().Amount(),
			"stock_quantity": product.StockQuantity().Value(),
			"category_id":    product.CategoryID().Value(),
			"status":         string(product.Status()),
			"updated_at":     product.UpdatedAt(),
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

// FindByID trouve un produit par son identifiant, (nil, nil) s'il n'existe pas
func (r *PostgresProductRepository) FindByID(id domain.ProductID) (*domain.Product, error) {
	query := "SELECT " + productSelectColumns + " FROM products WHERE id = $1"
	product, err := scanProduct(r.QueryRow(query, id.Value()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// FindByCategoryID liste les produits d'une catégorie
func (r *PostgresProductRepository) FindByCategoryID(categoryID domain.CategoryID) ([]*domain.Product, error) {
	query := "SELECT " + productSelectColumns + " FROM products WHERE category_id = $1 ORDER BY created_at"
	return r.queryProducts(query, categoryID.Value())
}

// FindByStatus liste les produits dans un statut donné
func (r *PostgresProductRepository) FindByStatus(status domain.ProductStatus) ([]*domain.Product, error) {
	query := "SELECT " + productSelectColumns + " FROM products WHERE status = $1 ORDER BY created_at"
	return r.queryProducts(query, string(status))
}

// FindOnSale liste les produits actuellement en vente
func (r *PostgresProductRepository) FindOnSale() ([]*domain.Product, error) {
	return r.FindByStatus(domain.StatusOnSale)
}

// FindAll liste tous les produits
func (r *PostgresProductRepository) FindAll() ([]*domain.Product, error) {
	query := "SELECT " + productSelectColumns + " FROM products ORDER BY created_at"
	return r.queryProducts(query)
}

// DeleteByID supprime un produit
func (r *PostgresProductRepository) DeleteByID(id domain.ProductID) error {
	_, err := r.Exec("DELETE FROM products WHERE id = $1", id.Value())
	return err
}

// ExistsByID vérifie l'existence d'un produit
func (r *PostgresProductRepository) ExistsByID(id domain.ProductID) (bool, error) {
	var exists bool
	err := r.QueryRow("SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)", id.Value()).Scan(&exists)
	return exists, err
}

// Count retourne le nombre total de produits
func (r *PostgresProductRepository) Count() (int64, error) {
	var count int64
	err := r.QueryRow("SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

func (r *PostgresProductRepository) queryProducts(query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := r.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProduct reconstitue l'agrégat depuis une ligne
func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		id, name, description, categoryID, status string
		price                                     int64
		stock                                     int
		createdAt, updatedAt                      time.Time
	)
	if err := row.Scan(&id, &name, &description, &price, &stock, &categoryID, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	productID, err := domain.NewProductID(id)
	if err != nil {
		return nil, err
	}
	productName, err := domain.NewProductName(name)
	if err != nil {
		return nil, err
	}
	cid, err := domain.NewCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	productStatus, err := domain.ParseProductStatus(status)
	if err != nil {
		return nil, err
	}
	// Les contraintes CHECK du schéma garantissent des valeurs non négatives
	money, _ := shareddomain.NewMoney(price)
	quantity, _ := shareddomain.NewQuantity(stock)

	return domain.ReconstituteProduct(productID, productName, description,
		money, quantity, cid, productStatus, createdAt, updatedAt), nil
}
