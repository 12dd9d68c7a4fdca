package main

import (
	"encoding/json"
	"log"
	"os"

	"stockpile/internal/model"
)

// Writes a sample products.json for local development. The target path
// can be overridden with the first argument.
func main() {
	path := "products.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	products := []model.Product{
		{ID: 1, Name: "Widget", Price: 5, InStock: true},
		{ID: 2, Name: "Gadget", Price: 10, InStock: false},
		{ID: 3, Name: "Sprocket", Price: 2.5, InStock: true},
		{ID: 4, Name: "Gizmo", Price: 19.99, InStock: true},
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode products: %v", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", path, err)
	}

	log.Printf("wrote %d sample products to %s", len(products), path)
}
