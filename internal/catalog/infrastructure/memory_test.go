package infrastructure

import (
	"testing"

	"catalog/internal/catalog/domain"
	shareddomain "catalog/internal/shared/domain"
)

func newMemoryProduct(t *testing.T, name string, categoryID domain.CategoryID) *domain.Product {
	t.Helper()

	productName, err := domain.NewProductName(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	product, err := domain.NewProduct(productName, "", shareddomain.MustNewMoney(10000),
		shareddomain.MustNewQuantity(5), categoryID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	product.PullDomainEvents()
	return product
}

// ========================================
// Tests: repositories en mémoire
// ========================================

func TestMemoryProductRepository_Contracts(t *testing.T) {
	repo := NewMemoryProductRepository()
	categoryID := domain.GenerateCategoryID()

	first := newMemoryProduct(t, "Casque sans fil", categoryID)
	second := newMemoryProduct(t, "Clavier mécanique", domain.GenerateCategoryID())
	for _, product := range []*domain.Product{first, second} {
		if err := repo.Save(product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// FindByID: (nil, nil) pour un produit absent
	missing, err := repo.FindByID(domain.GenerateProductID())
	if err != nil || missing != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", missing, err)
	}

	loaded, err := repo.FindByID(first.ID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loaded.Equals(first) {
		t.Error("expected the saved product")
	}

	inCategory, _ := repo.FindByCategoryID(categoryID)
	if len(inCategory) != 1 || !inCategory[0].Equals(first) {
		t.Errorf("expected only the first product, got %d", len(inCategory))
	}

	count, _ := repo.Count()
	if count != 2 {
		t.Errorf("expected 2 products, got %d", count)
	}

	// Les listes préservent l'ordre d'insertion
	all, _ := repo.FindAll()
	if len(all) != 2 || !all[0].Equals(first) || !all[1].Equals(second) {
		t.Error("expected insertion order to be preserved")
	}

	if err := repo.DeleteByID(first.ID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exists, _ := repo.ExistsByID(first.ID())
	if exists {
		t.Error("expected the product to be gone")
	}
	count, _ = repo.Count()
	if count != 1 {
		t.Errorf("expected 1 product after deletion, got %d", count)
	}
}

func TestMemoryCategoryRepository_Contracts(t *testing.T) {
	repo := NewMemoryCategoryRepository()

	root, _ := domain.NewRootCategory("Électronique", "", 0)
	if err := repo.Save(root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rootID := root.ID()
	child, _ := domain.NewCategory("Audio", "", &rootID, 0)
	if err := repo.Save(child); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	roots, _ := repo.FindRoots()
	if len(roots) != 1 || !roots[0].Equals(root) {
		t.Errorf("expected only the root, got %d", len(roots))
	}

	children, _ := repo.FindByParentID(rootID)
	if len(children) != 1 || !children[0].Equals(child) {
		t.Errorf("expected only the child, got %d", len(children))
	}

	child.Deactivate()
	_ = repo.Save(child)
	active, _ := repo.FindActive()
	if len(active) != 1 || !active[0].Equals(root) {
		t.Errorf("expected only the active category, got %d", len(active))
	}

	missing, err := repo.FindByID(domain.GenerateCategoryID())
	if err != nil || missing != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", missing, err)
	}

	if err := repo.DeleteByID(child.ID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exists, _ := repo.ExistsByID(child.ID())
	if exists {
		t.Error("expected the category to be gone")
	}
}
