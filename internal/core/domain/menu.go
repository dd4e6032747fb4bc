package domain

import "math"

// Category is one of the four fixed menu groupings. Each category is backed
// by its own physical table, so the set is closed.
type Category int

const (
	CategoryMain Category = iota + 1
	CategoryAppetizers
	CategorySauces
	CategoryBeverages
)

// Categories lists every category in menu order.
var Categories = []Category{CategoryMain, CategoryAppetizers, CategorySauces, CategoryBeverages}

var categoryTables = map[Category]string{
	CategoryMain:       "main",
	CategoryAppetizers: "appetizers",
	CategorySauces:     "sauces",
	CategoryBeverages:  "beverages",
}

var categoryLabels = map[Category]string{
	CategoryMain:       "MAIN COURSE",
	CategoryAppetizers: "APPETIZERS",
	CategorySauces:     "SAUCES & DIPS",
	CategoryBeverages:  "BEVERAGES",
}

// ParseCategory maps a route table identifier (main, appetizers, sauces,
// beverages) to its Category. Anything else yields ErrInvalidCategory.
func ParseCategory(table string) (Category, error) {
	for c, name := range categoryTables {
		if name == table {
			return c, nil
		}
	}
	return 0, ErrInvalidCategory
}

// Table is the identifier used in routes and as the physical table name.
func (c Category) Table() string { return categoryTables[c] }

// Label is the display name returned to clients.
func (c Category) Label() string { return categoryLabels[c] }

func (c Category) String() string { return c.Table() }

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	_, ok := categoryTables[c]
	return ok
}

// Price bounds of the NUMERIC(10,2) menu columns.
const (
	MinMenuPrice = 0.01
	MaxMenuPrice = 99999999.99

	maxPriceCents = 9999999999
)

// NormalizePrice rounds p to cents and reports whether the result fits the
// stored column range.
func NormalizePrice(p float64) (float64, bool) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	cents := math.Round(p * 100)
	if cents < 1 || cents > maxPriceCents {
		return 0, false
	}
	return cents / 100, true
}

// MenuItem is a purchasable item. Its ID is only unique within its category.
type MenuItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category Category `json:"-"`
}

// MenuItemView is the client representation of a MenuItem.
type MenuItemView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// View tags the item with its category label.
func (m MenuItem) View() MenuItemView {
	return MenuItemView{ID: m.ID, Name: m.Name, Price: m.Price, Category: m.Category.Label()}
}
