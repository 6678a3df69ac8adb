package catalog

import (
	"testing"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTranslatorTranslate(t *testing.T) {
	tr := DefaultTranslator()

	t.Run("OverrideWins", func(t *testing.T) {
		p := domain.Product{
			ID:            1,
			Title:         "Mens Cotton Jacket",
			TitleEs:       "Campera de algodón",
			Description:   "warm",
			DescriptionEs: "abrigada",
			Category:      "men's clothing",
		}
		lp := tr.Translate(p)
		assert.Equal(t, "Campera de algodón", lp.Title)
		assert.Equal(t, "abrigada", lp.Description)
		assert.Equal(t, "Ropa de hombre", lp.CategoryEs)
		assert.Equal(t, "Mens Cotton Jacket", p.Title)
	})

	t.Run("RulesAppliedInSequence", func(t *testing.T) {
		lp := tr.Translate(domain.Product{Title: "Men's Slim Fit T-Shirt"})
		assert.Equal(t, "de hombre entallada Remera", lp.Title)
	})

	t.Run("FirstMatchPerRule", func(t *testing.T) {
		lp := tr.Translate(domain.Product{Title: "tshirt and TSHIRT"})
		assert.Equal(t, "Remera and TSHIRT", lp.Title)
	})

	t.Run("DescriptionPassThrough", func(t *testing.T) {
		lp := tr.Translate(domain.Product{Title: "Backpack", Description: "Fits 15 inch laptops"})
		assert.Equal(t, "Mochila", lp.Title)
		assert.Equal(t, "Fits 15 inch laptops", lp.Description)
	})

	t.Run("UnknownCategoryFallsBack", func(t *testing.T) {
		lp := tr.Translate(domain.Product{Category: "garden"})
		assert.Equal(t, "garden", lp.CategoryEs)
	})

	t.Run("StableWithOverrides", func(t *testing.T) {
		p := domain.Product{Title: "T-shirt", TitleEs: "Remera básica", DescriptionEs: "algodón"}
		once := tr.Translate(p)
		twice := tr.Translate(once.Product)
		assert.Equal(t, once, twice)
	})
}
