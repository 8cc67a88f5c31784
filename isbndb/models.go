// file: isbndb/models.go
// version: 1.1.0
// guid: 7c1f5e9a-2d4b-4c6e-8a0f-3b5d7e9c1a2f

// Package isbndb is a client for the ISBNdb book-metadata REST API. It
// covers book lookup by ISBN, full-text book search, and author/publisher
// lookups, with per-plan request throttling built in.
package isbndb

// Dimension is one physical measurement of a book.
type Dimension struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// StructuredDimensions holds the machine-readable dimensions of a book.
type StructuredDimensions struct {
	Length Dimension `json:"length"`
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Weight Dimension `json:"weight"`
}

// MerchantLogoOffset positions a merchant logo within its sprite sheet.
type MerchantLogoOffset struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Price is a single merchant offer for a book. Only populated when prices
// are requested on a book lookup.
type Price struct {
	Condition          string              `json:"condition"`
	Merchant           string              `json:"merchant"`
	MerchantLogo       string              `json:"merchant_logo,omitempty"`
	MerchantLogoOffset *MerchantLogoOffset `json:"merchant_logo_offset,omitempty"`
	Shipping           string              `json:"shipping,omitempty"`
	Price              string              `json:"price"`
	Total              string              `json:"total"`
	Link               string              `json:"link"`
}

// Book is the full metadata record for a single edition.
type Book struct {
	Title                string                `json:"title"`
	TitleLong            string                `json:"title_long,omitempty"`
	ISBN                 string                `json:"isbn"`
	ISBN13               string                `json:"isbn13"`
	DeweyDecimal         string                `json:"dewey_decimal,omitempty"`
	Binding              string                `json:"binding,omitempty"`
	Authors              []string              `json:"authors"`
	Publisher            string                `json:"publisher"`
	DatePublished        string                `json:"date_published"`
	Pages                int                   `json:"pages"`
	Language             string                `json:"language"`
	Image                string                `json:"image"`
	Dimensions           string                `json:"dimensions,omitempty"`
	DimensionsStructured *StructuredDimensions `json:"dimensions_structured,omitempty"`
	MSRP                 float64               `json:"msrp,omitempty"`
	Excerpt              string                `json:"excerpt,omitempty"`
	Synopsis             string                `json:"synopsis,omitempty"`
	Subjects             []string              `json:"subjects,omitempty"`
	Overview             string                `json:"overview,omitempty"`
	Edition              string                `json:"edition,omitempty"`
	Prices               []Price               `json:"prices,omitempty"`
}

// Author aggregates an author's name with their known books.
type Author struct {
	Name  string
	Books []Book
	Total int
}

// Publisher aggregates a publisher's name with the ISBNs of its known
// books. The upstream publisher endpoint returns ISBNs only, not full
// book records.
type Publisher struct {
	Name  string
	ISBNs []string
}

// SearchResults is one page of relevance-ranked search hits, in the order
// the API returned them.
type SearchResults struct {
	Total int
	Books []Book
}
