package application

import (
	"time"

	"go.uber.org/zap"

	"catalog/internal/catalog/domain"
	shareddomain "catalog/internal/shared/domain"
	sharedinfra "catalog/internal/shared/infrastructure"
)

const (
	productCacheTTL    = 5 * time.Minute
	repriceWorkerCount = 4
)

// ProductService orchestre le cycle de vie des produits: chargement via le
// repository, invocation des opérations de l'agrégat, sauvegarde, puis drainage
// et publication des événements de domaine collectés.
type ProductService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	publisher  EventPublisher
	cache      sharedinfra.Cache
	logger     *zap.Logger
	domainSvc  *domain.ProductDomainService
}

// NewProductService crée un nouveau service applicatif produit
func NewProductService(products domain.ProductRepository, categories domain.CategoryRepository,
	publisher EventPublisher, cache sharedinfra.Cache, logger *zap.Logger) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
		domainSvc:  domain.NewProductDomainService(),
	}
}

// RegisterProduct enregistre un nouveau produit dans le catalogue.
// La catégorie de rattachement doit exister.
func (s *ProductService) RegisterProduct(name, description string, price int64,
	initialStock int, categoryID string) (*domain.Product, error) {
	productName, err := domain.NewProductName(name)
	if err != nil {
		return nil, err
	}
	productPrice, err := shareddomain.NewMoney(price)
	if err != nil {
		return nil, err
	}
	stock, err := shareddomain.NewQuantity(initialStock)
	if err != nil {
		return nil, err
	}
	cid, err := domain.NewCategoryID(categoryID)
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsByID(cid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shareddomain.NewNotFoundError("category", cid.Value())
	}

	product, err := domain.NewProduct(productName, description, productPrice, stock, cid)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	s.publishEvents(product)

	s.logger.Info("product registered",
		zap.String("product_id", product.ID().Value()),
		zap.String("name", product.Name().Value()),
	)
	return product, nil
}

// StartSelling démarre la vente d'un produit
func (s *ProductService) StartSelling(id string) error {
	_, err := s.withProduct(id, func(p *domain.Product) error {
		return p.StartSelling()
	})
	return err
}

// Discontinue retire un produit de la vente
func (s *ProductService) Discontinue(id string) error {
	_, err := s.withProduct(id, func(p *domain.Product) error {
		p.Discontinue()
		return nil
	})
	return err
}

// ChangePrice change le prix d'un produit
func (s *ProductService) ChangePrice(id string, newPrice int64) error {
	price, err := shareddomain.NewMoney(newPrice)
	if err != nil {
		return err
	}
	_, err = s.withProduct(id, func(p *domain.Product) error {
		p.ChangePrice(price)
		return nil
	})
	return err
}

// AddStock ajoute du stock à un produit
func (s *ProductService) AddStock(id string, quantity int) error {
	qty, err := shareddomain.NewQuantity(quantity)
	if err != nil {
		return err
	}
	_, err = s.withProduct(id, func(p *domain.Product) error {
		p.AddStock(qty)
		return nil
	})
	return err
}

// DecreaseStock diminue le stock d'un produit vendable
func (s *ProductService) DecreaseStock(id string, quantity int) error {
	qty, err := shareddomain.NewQuantity(quantity)
	if err != nil {
		return err
	}
	_, err = s.withProduct(id, func(p *domain.Product) error {
		return p.DecreaseStock(qty)
	})
	return err
}

// UpdateProductInfo remplace le nom et la description d'un produit
func (s *ProductService) UpdateProductInfo(id, name, description string) error {
	productName, err := domain.NewProductName(name)
	if err != nil {
		return err
	}
	_, err = s.withProduct(id, func(p *domain.Product) error {
		return p.UpdateInfo(productName, description)
	})
	return err
}

// ChangeProductCategory rattache un produit à une autre catégorie existante
func (s *ProductService) ChangeProductCategory(id, categoryID string) error {
	cid, err := domain.NewCategoryID(categoryID)
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
	_, err = s.withProduct(id, func(p *domain.Product) error {
		return p.ChangeCategory(cid)
	})
	return err
}

// GetProduct charge un produit, avec cache de lecture
func (s *ProductService) GetProduct(id string) (*domain.Product, error) {
	productID, err := domain.NewProductID(id)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(productCacheKey(productID)); ok {
		return cached.(*domain.Product), nil
	}

	product, err := domain.GetProductByID(s.products, productID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(productCacheKey(productID), product, productCacheTTL)
	return product, nil
}

// ListByCategory liste les produits d'une catégorie
func (s *ProductService) ListByCategory(categoryID string) ([]*domain.Product, error) {
	cid, err := domain.NewCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	return s.products.FindByCategoryID(cid)
}

// ListByStatus liste les produits dans un statut donné
func (s *ProductService) ListByStatus(status string) ([]*domain.Product, error) {
	parsed, err := domain.ParseProductStatus(status)
	if err != nil {
		return nil, err
	}
	return s.products.FindByStatus(parsed)
}

// ListOnSale liste les produits actuellement en vente
func (s *ProductService) ListOnSale() ([]*domain.Product, error) {
	return s.products.FindOnSale()
}

// DeleteProduct supprime un produit du catalogue.
// La suppression relève de la persistance, jamais de l'agrégat lui-même.
func (s *ProductService) DeleteProduct(id string) error {
	productID, err := domain.NewProductID(id)
	if err != nil {
		return err
	}
	exists, err := s.products.ExistsByID(productID)
	if err != nil {
		return err
	}
	if !exists {
		return shareddomain.NewNotFoundError("product", productID.Value())
	}
	if err := s.products.DeleteByID(productID); err != nil {
		return err
	}
	s.cache.Delete(productCacheKey(productID))
	return nil
}

// RepriceCategory applique une remise en pourcentage à tous les produits d'une
// catégorie, en parallèle sur des agrégats distincts. Chaque produit est
// sauvegardé individuellement: un échec n'affecte pas les autres.
func (s *ProductService) RepriceCategory(categoryID string, discountPercent int) error {
	policy, err := domain.PercentDiscount(discountPercent)
	if err != nil {
		return err
	}
	cid, err := domain.NewCategoryID(categoryID)
	if err != nil {
		return err
	}

	products, err := s.products.FindByCategoryID(cid)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	unit := shareddomain.MustNewQuantity(1)

	pool := sharedinfra.NewWorkerPool(repriceWorkerCount)
	pool.Start()
	for _, product := range products {
		p := product
		if err := pool.Submit(func() error {
			p.ChangePrice(policy(p, unit))
			if err := s.products.Save(p); err != nil {
				return err
			}
			s.cache.Delete(productCacheKey(p.ID()))
			s.publishEvents(p)
			return nil
		}); err != nil {
			pool.Wait()
			return err
		}
	}
	pool.Wait()

	var firstErr error
	for {
		select {
		case taskErr := <-pool.Errors():
			if firstErr == nil {
				firstErr = taskErr
			}
			s.logger.Warn("repricing failed for a product", zap.Error(taskErr))
		default:
			return firstErr
		}
	}
}

// CanOrderAll vérifie que toutes les lignes d'une commande sont commandables
func (s *ProductService) CanOrderAll(lines map[string]int) (bool, error) {
	items, err := s.loadOrderItems(lines)
	if err != nil {
		return false, err
	}
	return s.domainSvc.CanOrderAll(items), nil
}

// OrderTotal calcule le montant total d'une commande multi-lignes, sans remise
func (s *ProductService) OrderTotal(lines map[string]int) (shareddomain.Money, error) {
	items, err := s.loadOrderItems(lines)
	if err != nil {
		return shareddomain.MoneyZero, err
	}
	return s.domainSvc.CalculateOrderTotal(items), nil
}

func (s *ProductService) loadOrderItems(lines map[string]int) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(lines))
	for id, quantity := range lines {
		productID, err := domain.NewProductID(id)
		if err != nil {
			return nil, err
		}
		qty, err := shareddomain.NewQuantity(quantity)
		if err != nil {
			return nil, err
		}
		product, err := domain.GetProductByID(s.products, productID)
		if err != nil {
			return nil, err
		}
		item, err := domain.NewOrderItem(product, qty)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// withProduct charge un produit, applique une mutation, sauvegarde puis publie.
// Un échec de la mutation laisse la persistance et le cache intacts.
func (s *ProductService) withProduct(id string, fn func(*domain.Product) error) (*domain.Product, error) {
	productID, err := domain.NewProductID(id)
	if err != nil {
		return nil, err
	}
	product, err := domain.GetProductByID(s.products, productID)
	if err != nil {
		return nil, err
	}
	if err := fn(product); err != nil {
		return nil, err
	}
	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	s.cache.Delete(productCacheKey(productID))
	s.publishEvents(product)
	return product, nil
}

func (s *ProductService) publishEvents(product *domain.Product) {
	events := product.PullDomainEvents()
	if len(events) == 0 {
		return
	}
	s.publisher.Publish(events)
}

func productCacheKey(id domain.ProductID) string {
	return "product:" + id.Value()
}
