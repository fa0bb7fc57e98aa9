package entity

import "strings"

// Category is a fixed item grouping. Color and icon feed the client's pickers.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// DefaultCategory is applied when a draft does not carry a category.
const DefaultCategory = "other"

// ItemCategories is the fixed category catalog.
var ItemCategories = []Category{
	{ID: "tools", Name: "Tools", Color: "#2563eb", Icon: "wrench"},
	{ID: "hardware", Name: "Hardware", Color: "#dc2626", Icon: "hammer"},
	{ID: "electrical", Name: "Electrical", Color: "#eab308", Icon: "zap"},
	{ID: "plumbing", Name: "Plumbing", Color: "#0ea5e9", Icon: "droplets"},
	{ID: "safety", Name: "Safety", Color: "#16a34a", Icon: "shield"},
	{ID: "consumables", Name: "Consumables", Color: "#9333ea", Icon: "package"},
	{ID: "other", Name: "Other", Color: "#64748b", Icon: "box"},
}

// Units is the fixed unit vocabulary. Free-form units are still accepted.
var Units = []string{
	"pieces", "meters", "feet", "liters", "gallons", "kg", "lbs", "boxes", "rolls", "tubes",
}

// VanSides and VanBays enumerate the physical placements inside the van.
var (
	VanSides = []string{"Driver Side", "Passenger Side", "Rear Doors", "Bulkhead"}
	VanBays  = []string{
		"Drawer 1", "Drawer 2", "Drawer 3", "Drawer 4",
		"Shelf 1", "Shelf 2", "Shelf 3",
		"Floor", "Overhead",
	}
)

// IsValidCategory reports whether id is one of the fixed categories.
func IsValidCategory(id string) bool {
	for _, c := range ItemCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// LocationLabel joins a van side and bay into the stored location string.
func LocationLabel(side, bay string) string {
	return side + " - " + bay
}

// MatchesSearch reports whether the item matches a case-insensitive substring
// search over name, category and location (the inventory screen's behavior).
func (i InventoryItem) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Category), q) ||
		strings.Contains(strings.ToLower(i.Location), q)
}
