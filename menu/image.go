package menu

import "strings"

// Placeholder images served by the front end when an item has none.
const (
	DefaultPizzaImage    = "/default-pizza.jpg"
	DefaultBeverageImage = "/default-beverage.jpg"
)

// ImageURL resolves an item's image against the backend base URL. Items
// without an uploaded image get their category placeholder.
func ImageURL(baseURL string, item Item) string {
	info := item.Details()
	if info.ImagePath == "" {
		if info.Category == CategoryBeverage {
			return DefaultBeverageImage
		}
		return DefaultPizzaImage
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(info.ImagePath, "/")
}
