package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"catalog/database"
	"catalog/internal/catalog/domain"
	"catalog/internal/catalog/infrastructure"
	shareddomain "catalog/internal/shared/domain"
)

type seedProduct struct {
	name        string
	description string
	price       int64
	stock       int
}

func main() {
	// Charge .env
	if err := godotenv.Load(); err != nil {
		log.Println("Attention: fichier .env non trouvé, utilisation des valeurs par défaut")
	}

	if err := database.Init(database.ConnStringFromEnv()); err != nil {
		log.Fatal("❌ Erreur connexion DB:", err)
	}
	defer database.Close()

	fmt.Println("✅ Connexion PostgreSQL établie")

	if err := database.CreateSchema(database.DB); err != nil {
		log.Fatal("❌ Erreur création du schéma:", err)
	}

	fmt.Println("🌱 Démarrage du seed du catalogue...")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if err := seed(); err != nil {
		log.Fatal("❌ Erreur lors du seed:", err)
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("✅ Seed terminé avec succès!")
}

func seed() error {
	categories := infrastructure.NewPostgresCategoryRepository(database.DB)
	products := infrastructure.NewPostgresProductRepository(database.DB)

	roots := map[string][]seedProduct{
		"Électronique": {
			{"Laptop Pro 15", "Portable 15 pouces, 16 Go RAM", 1299000, 12},
			{"Casque sans fil", "Réduction de bruit active", 249000, 40},
			{"Clavier mécanique", "Switches silencieux", 89000, 25},
		},
		"Livres": {
			{"Architecture logicielle", "Patterns et pratiques", 45000, 30},
			{"Le guide du domaine", "Conception pilotée par le domaine", 52000, 18},
		},
		"Maison": {
			{"Machine à café", "Expresso automatique", 399000, 8},
			{"Lampe de bureau", "LED, intensité réglable", 35000, 50},
		},
	}

	displayOrder := 0
	for rootName, items := range roots {
		category, err := domain.NewRootCategory(rootName, "", displayOrder)
		if err != nil {
			return err
		}
		if err := categories.Save(category); err != nil {
			return err
		}
		displayOrder++

		for _, item := range items {
			name, err := domain.NewProductName(item.name)
			if err != nil {
				return err
			}
			price, err := shareddomain.NewMoney(item.price)
			if err != nil {
				return err
			}
			stock, err := shareddomain.NewQuantity(item.stock)
			if err != nil {
				return err
			}

			product, err := domain.NewProduct(name, item.description, price, stock, category.ID())
			if err != nil {
				return err
			}
			if err := product.StartSelling(); err != nil {
				return err
			}
			if err := products.Save(product); err != nil {
				return err
			}
			// Les événements collectés ne sont pas publiés lors du seed
			product.PullDomainEvents()
		}

		fmt.Printf("  📦 %s: %d produits\n", rootName, len(items))
	}

	count, err := products.Count()
	if err != nil {
		return err
	}
	fmt.Printf("  Total: %d produits en vente\n", count)
	return nil
}
