package models

// CatalogItem represents a menu item available for order.
// Prices are whole units of the local currency (COP has no minor unit in use).
type CatalogItem struct {
	ID          int64  `json:"id" yaml:"id" validate:"gt=0"`
	Name        string `json:"name" yaml:"name" validate:"notblank"`
	UnitPrice   int64  `json:"price" yaml:"price" validate:"gte=0"`
	ImageRef    string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category" validate:"notblank"`
}
