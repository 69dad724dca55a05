package domain

import shareddomain "catalog/internal/shared/domain"

// PricingPolicy calcule le prix final d'un (produit, quantité) donné.
// Stratégie pure: aucune politique ne mute le produit ni la quantité.
type PricingPolicy func(product *Product, quantity shareddomain.Quantity) shareddomain.Money

// StandardPricing politique de base: prix × quantité, sans remise
func StandardPricing() PricingPolicy {
	return func(product *Product, quantity shareddomain.Quantity) shareddomain.Money {
		return basePrice(product, quantity)
	}
}

// PercentDiscount politique de remise en pourcentage (0-100).
// La construction échoue hors bornes.
func PercentDiscount(discountPercent int) (PricingPolicy, error) {
	if discountPercent < 0 || discountPercent > 100 {
		return nil, shareddomain.NewValidationError("discount percent must be between 0 and 100: %d", discountPercent)
	}
	return func(product *Product, quantity shareddomain.Quantity) shareddomain.Money {
		return applyPercent(basePrice(product, quantity), discountPercent)
	}, nil
}

// FixedDiscount politique de remise d'un montant fixe.
// Le prix est plafonné à zéro, jamais négatif.
func FixedDiscount(discountAmount shareddomain.Money) PricingPolicy {
	return func(product *Product, quantity shareddomain.Quantity) shareddomain.Money {
		price := basePrice(product, quantity)
		if price.IsLessThanOrEqual(discountAmount) {
			return shareddomain.MoneyZero
		}
		discounted, _ := price.Subtract(discountAmount)
		return discounted
	}
}

// BulkDiscount politique de remise sur achat en volume.
// La remise s'applique à partir du seuil inclus; en dessous, prix plein.
func BulkDiscount(thresholdQuantity, discountPercent int) (PricingPolicy, error) {
	if discountPercent < 0 || discountPercent > 100 {
		return nil, shareddomain.NewValidationError("discount percent must be between 0 and 100: %d", discountPercent)
	}
	return func(product *Product, quantity shareddomain.Quantity) shareddomain.Money {
		price := basePrice(product, quantity)
		if quantity.Value() >= thresholdQuantity {
			return applyPercent(price, discountPercent)
		}
		return price
	}, nil
}

// basePrice calcule prix × quantité; la quantité étant non négative, Multiply ne peut pas échouer
func basePrice(product *Product, quantity shareddomain.Quantity) shareddomain.Money {
	price, _ := product.Price().Multiply(quantity.Value())
	return price
}

// applyPercent applique une remise en pourcentage, arrondie à l'unité (.5 vers le haut)
func applyPercent(price shareddomain.Money, discountPercent int) shareddomain.Money {
	discountedAmount := (price.Amount()*int64(100-discountPercent) + 50) / 100
	discounted, _ := shareddomain.NewMoney(discountedAmount)
	return discounted
}
