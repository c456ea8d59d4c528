// Package seed charge le catalogue d'exemple au premier démarrage.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/docstore"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
)

// Products est le catalogue de démonstration (ids "1" à "6")
func Products() []models.Product {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	products := []models.Product{
		{
			ID:          "1",
			Title:       "Refurbished Laptop",
			Description: "High-performance laptop with eco-friendly refurbishment. 16GB RAM, 512GB SSD.",
			Price:       599.99,
			Category:    "Laptops",
			Condition:   models.ConditionRefurbished,
			CarbonSaved: 120,
			Seller:      "EcoTech",
			Image:       "https://images.unsplash.com/photo-1593642634367-d91a135587b5?auto=format&fit=crop&w=1169&q=80",
		},
		{
			ID:          "2",
			Title:       "Wireless Noise Cancelling Headphones",
			Description: "High-quality sound with active noise cancellation in an environmentally conscious design.",
			Price:       149.99,
			Category:    "Audio",
			Condition:   models.ConditionLikeNew,
			CarbonSaved: 15,
			Seller:      "SoundGreen",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=1170&q=80",
		},
		{
			ID:          "3",
			Title:       "Smart Thermostat",
			Description: "Energy-efficient thermostat that helps reduce your carbon footprint and save on energy bills.",
			Price:       79.99,
			Category:    "Smart Home",
			Condition:   models.ConditionNew,
			CarbonSaved: 45,
			Seller:      "GreenHome",
			Image:       "https://images.unsplash.com/photo-1567789884742-f3dadf944118?auto=format&fit=crop&w=1170&q=80",
		},
		{
			ID:          "4",
			Title:       "Solar Power Bank",
			Description: "10,000 mAh power bank with solar charging capabilities for sustainable on-the-go power.",
			Price:       49.99,
			Category:    "Accessories",
			Condition:   models.ConditionNew,
			CarbonSaved: 10,
			Seller:      "SolarPower",
			Image:       "https://images.unsplash.com/photo-1593941707882-a5bba14938c7?auto=format&fit=crop&w=1172&q=80",
		},
		{
			ID:          "5",
			Title:       "Refurbished Smartphone",
			Description: "Professionally refurbished smartphone with 12-month warranty and eco-friendly packaging.",
			Price:       329.99,
			Category:    "Phones",
			Condition:   models.ConditionRefurbished,
			CarbonSaved: 80,
			Seller:      "RenewTech",
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02ff9?auto=format&fit=crop&w=1160&q=80",
		},
		{
			ID:          "6",
			Title:       "LED Smart Lighting",
			Description: "Energy-efficient LED smart bulbs that reduce energy consumption while providing customizable lighting.",
			Price:       34.99,
			Category:    "Smart Home",
			Condition:   models.ConditionNew,
			CarbonSaved: 25,
			Seller:      "BrightEco",
			Image:       "https://images.unsplash.com/photo-1586473219010-2ffc57b0d282?auto=format&fit=crop&w=1160&q=80",
		},
	}

	// Dates de mise en ligne étagées : l'annonce 6 est la plus récente
	for i := range products {
		products[i].ListedDate = base.Add(time.Duration(i) * 24 * time.Hour)
	}
	return products
}

// EnsureCatalog insère le catalogue d'exemple si la collection est vide
func EnsureCatalog(ctx context.Context, store docstore.Store) error {
	existing, err := store.Find(ctx, "products", docstore.All{})
	if err != nil {
		return fmt.Errorf("lecture catalogue: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range Products() {
		doc := docstore.Document{
			"_id":         p.ID,
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"price":       p.Price,
			"category":    p.Category,
			"condition":   p.Condition,
			"carbonSaved": p.CarbonSaved,
			"seller":      p.Seller,
			"listedDate":  p.ListedDate.Format(time.RFC3339),
			"image":       p.Image,
		}
		if _, err := store.InsertOne(ctx, "products", doc); err != nil {
			return fmt.Errorf("insertion produit %s: %w", p.ID, err)
		}
	}

	log.Printf("✅ Catalogue d'exemple chargé (%d produits)", len(Products()))
	return nil
}
