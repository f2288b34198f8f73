package domain

// Category is one of the parallel item families. Both share the same
// store/recorder/handler shape; only the URL slug and the physical table
// names differ, so the whole pipeline is parameterized by this value.
type Category struct {
	Slug         string
	ItemTable    string
	HistoryTable string
}

var (
	CategoryFishes = Category{
		Slug:         "fishes",
		ItemTable:    "fishes",
		HistoryTable: "fish_price_history",
	}

	CategoryKeralaItems = Category{
		Slug:         "kerala_items",
		ItemTable:    "kerala_items",
		HistoryTable: "kerala_item_price_history",
	}
)

func Categories() []Category {
	return []Category{CategoryFishes, CategoryKeralaItems}
}

// CategoryBySlug resolves a URL slug to its category. The second return is
// false for anything outside the registry.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories() {
		if c.Slug == slug {
			return c, true
		}
	}

	return Category{}, false
}
