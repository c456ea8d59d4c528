package services

import (
	"encoding/json"
	"fmt"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/docstore"
)

// toDocument convertit une valeur métier en document schéma-libre
func toDocument(v interface{}) (docstore.Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encodage document: %w", err)
	}
	var doc docstore.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("décodage document: %w", err)
	}
	return doc, nil
}

// fromDocument reconstruit une valeur métier depuis un document
func fromDocument(doc docstore.Document, v interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encodage document: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("décodage document: %w", err)
	}
	return nil
}
