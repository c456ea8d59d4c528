package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/catalog"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/seed"
)

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyEmptyCatalog(t *testing.T) {
	result := catalog.Apply(nil, models.FilterConfig{SearchTerm: "laptop"})
	assert.Empty(t, result)
}

func TestApplyNoFilters(t *testing.T) {
	products := seed.Products()
	result := catalog.Apply(products, models.FilterConfig{})
	assert.Equal(t, ids(products), ids(result), "sans filtre, la liste complète ressort dans l'ordre")
}

func TestApplyIsIdempotent(t *testing.T) {
	products := seed.Products()
	cfg := models.FilterConfig{
		CategoryFilter: "Smart Home",
		SortBy:         models.SortPriceLow,
	}

	first := catalog.Apply(products, cfg)
	second := catalog.Apply(products, cfg)
	assert.Equal(t, first, second)
}

func TestApplyNeverWidens(t *testing.T) {
	products := seed.Products()
	configs := []models.FilterConfig{
		{},
		{SearchTerm: "refurbished"},
		{CategoryFilter: "Audio"},
		{ConditionFilter: models.ConditionNew},
		{CarbonSavingsFilter: models.CarbonBandHigh},
		{SustainabilityFilter: models.SustainabilityExcellent},
		{PriceRange: [2]float64{50, 200}},
	}

	for _, cfg := range configs {
		result := catalog.Apply(products, cfg)
		assert.LessOrEqual(t, len(result), len(products))
	}
}

func TestApplyTextFilter(t *testing.T) {
	products := seed.Products()

	// Insensible à la casse, titre ou description
	result := catalog.Apply(products, models.FilterConfig{SearchTerm: "REFURBISHED"})
	assert.ElementsMatch(t, []string{"1", "5"}, ids(result))

	result = catalog.Apply(products, models.FilterConfig{SearchTerm: "energy-efficient"})
	assert.ElementsMatch(t, []string{"3", "6"}, ids(result))
}

func TestApplyCategoryScenario(t *testing.T) {
	// Scénario de référence : Smart Home → exactement les produits 3 et 6
	result := catalog.Apply(seed.Products(), models.FilterConfig{CategoryFilter: "Smart Home"})
	require.Len(t, result, 2)
	assert.Equal(t, []string{"3", "6"}, ids(result))
}

func TestApplyConditionFilter(t *testing.T) {
	result := catalog.Apply(seed.Products(), models.FilterConfig{ConditionFilter: models.ConditionLikeNew})
	assert.Equal(t, []string{"2"}, ids(result))
}

func TestApplyPriceRangeInclusive(t *testing.T) {
	// Les deux bornes sont incluses
	result := catalog.Apply(seed.Products(), models.FilterConfig{PriceRange: [2]float64{49.99, 149.99}})
	assert.ElementsMatch(t, []string{"2", "3", "4"}, ids(result))
}

func TestApplyCarbonBandBoundaries(t *testing.T) {
	products := []models.Product{
		{ID: "five", CarbonSaved: 5},
		{ID: "fifteen", CarbonSaved: 15},
	}

	// carbonSaved == 5 : exclu de low, inclus dans medium
	low := catalog.Apply(products, models.FilterConfig{CarbonSavingsFilter: models.CarbonBandLow})
	assert.Empty(t, ids(low))

	medium := catalog.Apply(products, models.FilterConfig{CarbonSavingsFilter: models.CarbonBandMedium})
	assert.Equal(t, []string{"five"}, ids(medium))

	// carbonSaved == 15 : exclu de medium, inclus dans high
	high := catalog.Apply(products, models.FilterConfig{CarbonSavingsFilter: models.CarbonBandHigh})
	assert.Equal(t, []string{"fifteen"}, ids(high))
}

func TestApplySustainabilityRules(t *testing.T) {
	products := seed.Products()

	// excellent : Refurbished ET carbonSaved >= 50 → produits 1 et 5
	excellent := catalog.Apply(products, models.FilterConfig{SustainabilityFilter: models.SustainabilityExcellent})
	assert.ElementsMatch(t, []string{"1", "5"}, ids(excellent))

	// good : Refurbished OU (Like New ET carbonSaved >= 20) → 1 et 5
	// (le produit 2 est Like New mais carbonSaved = 15)
	good := catalog.Apply(products, models.FilterConfig{SustainabilityFilter: models.SustainabilityGood})
	assert.ElementsMatch(t, []string{"1", "5"}, ids(good))
}

func TestApplySortCarbonScenario(t *testing.T) {
	// Tri carbone décroissant : produit 1 (120) premier, produit 4 (10) dernier
	result := catalog.Apply(seed.Products(), models.FilterConfig{SortBy: models.SortCarbon})
	require.Len(t, result, 6)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "4", result[len(result)-1].ID)
}

func TestApplySortPrice(t *testing.T) {
	result := catalog.Apply(seed.Products(), models.FilterConfig{SortBy: models.SortPriceLow})
	assert.Equal(t, []string{"6", "4", "3", "2", "5", "1"}, ids(result))

	result = catalog.Apply(seed.Products(), models.FilterConfig{SortBy: models.SortPriceHigh})
	assert.Equal(t, []string{"1", "5", "2", "3", "4", "6"}, ids(result))
}

func TestApplySortNewest(t *testing.T) {
	result := catalog.Apply(seed.Products(), models.FilterConfig{SortBy: models.SortNewest})
	assert.Equal(t, "6", result[0].ID, "l'annonce la plus récente en premier")
	assert.Equal(t, "1", result[len(result)-1].ID)
}

func TestApplySortIsStable(t *testing.T) {
	// Deux produits au même prix conservent leur ordre relatif d'avant tri
	products := []models.Product{
		{ID: "a", Price: 10},
		{ID: "b", Price: 5},
		{ID: "c", Price: 10},
		{ID: "d", Price: 10},
	}

	result := catalog.Apply(products, models.FilterConfig{SortBy: models.SortPriceLow})
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(result))
}

func TestApplyUnknownSortIsNoop(t *testing.T) {
	products := seed.Products()
	result := catalog.Apply(products, models.FilterConfig{SortBy: "brand"})
	assert.Equal(t, ids(products), ids(result))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := seed.Products()
	original := ids(products)

	catalog.Apply(products, models.FilterConfig{SortBy: models.SortPriceLow})
	assert.Equal(t, original, ids(products), "la liste reçue ne doit jamais être mutée")
}

func TestApplyClampsPriceRange(t *testing.T) {
	// Une borne haute aberrante est ramenée au plafond, rien n'est perdu
	result := catalog.Apply(seed.Products(), models.FilterConfig{PriceRange: [2]float64{-50, 99999}})
	assert.Len(t, result, 6)

	// Borne haute nulle = non renseignée : plafond par défaut
	result = catalog.Apply(seed.Products(), models.FilterConfig{})
	assert.Len(t, result, 6)
}

func TestDeriveFacets(t *testing.T) {
	facets := catalog.DeriveFacets(seed.Products())

	// Ordre d'insertion stable, sans doublon
	assert.Equal(t, []string{"Laptops", "Audio", "Smart Home", "Accessories", "Phones"}, facets.Categories)
	assert.Equal(t, []string{
		models.ConditionRefurbished,
		models.ConditionLikeNew,
		models.ConditionNew,
	}, facets.Conditions)
	assert.Equal(t, 599.99, facets.MaxPrice)
}

func TestDeriveFacetsEmptyCatalog(t *testing.T) {
	facets := catalog.DeriveFacets(nil)
	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Conditions)
	assert.Zero(t, facets.MaxPrice)
}

func TestMaxPrice(t *testing.T) {
	assert.Equal(t, 599.99, catalog.MaxPrice(seed.Products()))
	assert.Zero(t, catalog.MaxPrice(nil))
}
