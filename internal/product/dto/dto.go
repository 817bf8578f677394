package dto

// ProductFilters are optional and ANDed together. Category, Collection and
// Tag match as case-insensitive substrings; Tag matches against any tag.
type ProductFilters struct {
	Category   string
	Collection string
	Tag        string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    *bool
	IsVisible  *bool
}
