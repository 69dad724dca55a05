package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"catalog/internal/catalog/application"
	"catalog/internal/catalog/domain"
	"catalog/internal/catalog/infrastructure"
	shareddomain "catalog/internal/shared/domain"
	sharedinfra "catalog/internal/shared/infrastructure"
)

// Démo du cycle de vie complet d'un produit du catalogue, sur les
// repositories en mémoire: création, mise en vente, commande, tarification.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	products := infrastructure.NewMemoryProductRepository()
	categories := infrastructure.NewMemoryCategoryRepository()
	publisher := application.NewLogPublisher(logger)
	cache := sharedinfra.NewInMemoryCache()

	categoryService := application.NewCategoryService(categories, logger)
	productService := application.NewProductService(products, categories, publisher, cache, logger)

	// Catégorie racine et sous-catégorie
	electronics, err := categoryService.CreateRootCategory("Électronique", "Appareils et accessoires", 0)
	if err != nil {
		log.Fatal(err)
	}
	audio, err := categoryService.CreateCategory("Audio", "Casques et enceintes", electronics.ID().Value(), 0)
	if err != nil {
		log.Fatal(err)
	}

	// Enregistrement d'un produit: PENDING + événement ProductCreated
	product, err := productService.RegisterProduct(
		"Casque sans fil", "Réduction de bruit active", 249000, 10, audio.ID().Value())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Produit enregistré: %s (%s)\n", product.Name(), product.Status().Label())

	// Mise en vente puis commande
	if err := productService.StartSelling(product.ID().Value()); err != nil {
		log.Fatal(err)
	}
	if err := productService.DecreaseStock(product.ID().Value(), 3); err != nil {
		log.Fatal(err)
	}

	current, err := productService.GetProduct(product.ID().Value())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Après vente: stock=%s, statut=%s\n", current.StockQuantity(), current.Status().Label())

	// Politiques de tarification
	quantity := shareddomain.MustNewQuantity(5)
	standard := domain.StandardPricing()
	bulk, err := domain.BulkDiscount(5, 20)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Prix standard x5: %s\n", standard(current, quantity))
	fmt.Printf("Prix volume x5 (-20%%): %s\n", bulk(current, quantity))

	// Remise sur toute la catégorie, en parallèle
	if err := productService.RepriceCategory(audio.ID().Value(), 10); err != nil {
		log.Fatal(err)
	}
	repriced, err := productService.GetProduct(product.ID().Value())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Après remise catégorie -10%%: prix=%s\n", repriced.Price())
}
