package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/services"
)

func TestProductList(t *testing.T) {
	svc := services.NewProductService(seededStore(t), nil)

	products, notice := svc.List(context.Background())
	assert.Nil(t, notice)
	require.Len(t, products, 6)
	assert.Equal(t, "Refurbished Laptop", products[0].Title)
}

func TestProductGet(t *testing.T) {
	ctx := context.Background()
	svc := services.NewProductService(seededStore(t), nil)

	p, err := svc.Get(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "Refurbished Smartphone", p.Title)
	assert.Equal(t, 329.99, p.Price)

	_, err = svc.Get(ctx, "absent")
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestProductAdd(t *testing.T) {
	ctx := context.Background()
	svc := services.NewProductService(seededStore(t), nil)

	p, err := svc.Add(ctx, models.ProductDraft{
		Title:       "Refurbished Tablet",
		Description: "Tablette reconditionnée avec garantie.",
		Price:       199.99,
		Category:    "Tablets",
		Condition:   models.ConditionRefurbished,
		CarbonSaved: 35,
		Image:       "https://example.com/tablet.jpg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "User", p.Seller)
	assert.False(t, p.ListedDate.IsZero())

	// L'annonce est immédiatement visible dans le catalogue
	stored, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Refurbished Tablet", stored.Title)

	products, _ := svc.List(ctx)
	assert.Len(t, products, 7)
}

func TestProductAddDefaultsCarbonSaved(t *testing.T) {
	svc := services.NewProductService(seededStore(t), nil)

	p, err := svc.Add(context.Background(), models.ProductDraft{
		Title:       "Câble USB-C recyclé",
		Description: "Câble fabriqué à partir de plastique recyclé.",
		Price:       9.99,
		Category:    "Accessories",
		Condition:   models.ConditionNew,
		Image:       "https://example.com/cable.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.CarbonSaved, "valeur par défaut quand non renseignée")
}

func TestProductAddValidation(t *testing.T) {
	svc := services.NewProductService(seededStore(t), nil)

	// Champs obligatoires manquants : rejet local, rien n'est persisté
	_, err := svc.Add(context.Background(), models.ProductDraft{Title: "Incomplet"})
	assert.ErrorIs(t, err, services.ErrMissingFields)

	products, _ := svc.List(context.Background())
	assert.Len(t, products, 6)
}

func TestProductSearchByText(t *testing.T) {
	// Sans Elasticsearch : prédicats du magasin puis moteur local
	svc := services.NewProductService(seededStore(t), nil)

	products, notice := svc.Search(context.Background(), models.FilterConfig{SearchTerm: "refurbished"})
	assert.Nil(t, notice)
	idsFound := []string{}
	for _, p := range products {
		idsFound = append(idsFound, p.ID)
	}
	assert.ElementsMatch(t, []string{"1", "5"}, idsFound)
}

func TestProductSearchCombinedFilters(t *testing.T) {
	svc := services.NewProductService(seededStore(t), nil)

	products, _ := svc.Search(context.Background(), models.FilterConfig{
		CategoryFilter:      "Smart Home",
		CarbonSavingsFilter: models.CarbonBandHigh,
		SortBy:              models.SortPriceLow,
	})

	// Les deux produits Smart Home ont carbonSaved >= 15, triés par prix
	require.Len(t, products, 2)
	assert.Equal(t, "6", products[0].ID)
	assert.Equal(t, "3", products[1].ID)
}

func TestProductSearchSorted(t *testing.T) {
	svc := services.NewProductService(seededStore(t), nil)

	products, _ := svc.Search(context.Background(), models.FilterConfig{SortBy: models.SortCarbon})
	require.Len(t, products, 6)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "4", products[5].ID)
}

func TestProductFacets(t *testing.T) {
	svc := services.NewProductService(seededStore(t), nil)

	facets, notice := svc.Facets(context.Background())
	assert.Nil(t, notice)
	assert.Len(t, facets.Categories, 5)
	assert.Len(t, facets.Conditions, 3)
	assert.Equal(t, 599.99, facets.MaxPrice)
}
