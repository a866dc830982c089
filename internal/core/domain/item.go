// internal/core/domain/item.go
package domain

import (
	"strings"
	"time"
)

// ItemCategory classifies a catalog item
type ItemCategory string

// Category constants
const (
	CategoryProduce    ItemCategory = "produce"
	CategoryDairy      ItemCategory = "dairy"
	CategoryMeat       ItemCategory = "meat"
	CategoryBakery     ItemCategory = "bakery"
	CategoryCanned     ItemCategory = "canned"
	CategoryFrozen     ItemCategory = "frozen"
	CategoryPantry     ItemCategory = "pantry"
	CategoryBeverages  ItemCategory = "beverages"
	CategorySnacks     ItemCategory = "snacks"
	CategoryCondiments ItemCategory = "condiments"
	CategoryOther      ItemCategory = "other"
)

var validCategories = map[ItemCategory]bool{
	CategoryProduce:    true,
	CategoryDairy:      true,
	CategoryMeat:       true,
	CategoryBakery:     true,
	CategoryCanned:     true,
	CategoryFrozen:     true,
	CategoryPantry:     true,
	CategoryBeverages:  true,
	CategorySnacks:     true,
	CategoryCondiments: true,
	CategoryOther:      true,
}

// IsValid reports whether c is a known category.
func (c ItemCategory) IsValid() bool {
	return validCategories[c]
}

// Item is a catalog entry shared by all users. The barcode is globally
// unique; catalog rows are never duplicated per user. Quantity is the
// requesting user's aggregate across their locations, computed on read
// and never persisted on the row.
type Item struct {
	ID          int64        `json:"id"`
	Barcode     string       `json:"barcode"`
	Title       string       `json:"title"`
	Alias       string       `json:"alias"`
	Description string       `json:"description"`
	Category    ItemCategory `json:"category"`
	Quantity    int          `json:"quantity"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

// Validate performs domain validation on the catalog item
func (i *Item) Validate() error {
	i.Barcode = strings.TrimSpace(i.Barcode)
	i.Title = strings.TrimSpace(i.Title)

	if i.Barcode == "" {
		return NewValidationError("barcode", "barcode is required")
	}
	if i.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if i.Category == "" {
		i.Category = CategoryOther
	}
	if !i.Category.IsValid() {
		return NewValidationError("category", "unknown category: "+string(i.Category))
	}
	return nil
}
