package domain

type Category string

const (
	CategorySherwani    Category = "Sherwani"
	CategoryCoatSuit    Category = "Coat Suit"
	CategoryShirtPant   Category = "Shirt Pant"
	CategoryKurtaPajama Category = "Kurta Pajama"
	CategoryJodhpuri    Category = "Jodhpuri"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySherwani,
	CategoryCoatSuit,
	CategoryShirtPant,
	CategoryKurtaPajama,
	CategoryJodhpuri,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID       string
	Name     string
	Category Category
	Variety  string
	Price    int64
	Image    string
}

// Descriptor is the human-readable label sent to the advisory provider.
func (p Product) Descriptor() string {
	return p.Name + " (" + string(p.Category) + ")"
}
