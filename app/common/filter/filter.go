// Package filter holds the canonical shopper-intent representation and the deterministic
// predicate that evaluates catalog products against it.
package filter

import (
	"strings"

	"StrideAI/app/dal/catalog"
)

type Featured string

const (
	FeaturedNew        Featured = "new"
	FeaturedBestSeller Featured = "bestseller"
)

func (f Featured) Valid() bool {
	return f == FeaturedNew || f == FeaturedBestSeller
}

func ParseFeatured(raw string) Featured {
	f := Featured(strings.ToLower(strings.TrimSpace(raw)))
	if f.Valid() {
		return f
	}
	return ""
}

// Filter is built fresh for every intent and replaces the previous one wholesale.
// Every field is optional; the zero value matches every product.
//
// Demographic and Keywords are carried for the listing surface and the analytics stream but are
// not evaluated by Match. Demographic is collected by every extractor yet the storefront never
// narrowed on it, so Match keeps that behavior until the product decision changes.
type Filter struct {
	Category    catalog.Category    `json:"category,omitempty"`
	Activity    catalog.Activity    `json:"activity,omitempty"`
	Demographic catalog.Demographic `json:"demographic,omitempty"`
	// MaxPrice <= 0 means unbounded.
	MaxPrice float64  `json:"maxPrice,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Featured Featured `json:"featured,omitempty"`
}

// Normalize drops sentinel and unknown enum values, non-positive prices and blank keywords.
func (f Filter) Normalize() Filter {
	out := Filter{
		Category:    catalog.ParseCategory(string(f.Category)),
		Activity:    catalog.ParseActivity(string(f.Activity)),
		Demographic: catalog.ParseDemographic(string(f.Demographic)),
		Featured:    ParseFeatured(string(f.Featured)),
	}
	if f.MaxPrice > 0 {
		out.MaxPrice = f.MaxPrice
	}
	for _, kw := range f.Keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			out.Keywords = append(out.Keywords, trimmed)
		}
	}
	return out
}

func (f Filter) IsEmpty() bool {
	n := f.Normalize()
	return n.Category == "" && n.Activity == "" && n.Demographic == "" &&
		n.MaxPrice == 0 && len(n.Keywords) == 0 && n.Featured == ""
}

// Match reports whether p satisfies every constraint of f. Invalid fields constrain nothing.
func (f Filter) Match(p catalog.Product) bool {
	if c := catalog.ParseCategory(string(f.Category)); c != "" && p.Category != c {
		return false
	}
	if a := catalog.ParseActivity(string(f.Activity)); a != "" && p.Activity != a {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	switch ParseFeatured(string(f.Featured)) {
	case FeaturedNew:
		return p.IsNew
	case FeaturedBestSeller:
		return p.IsBestSeller
	}
	return true
}

// Apply keeps the products matching f in their original relative order. The input is not modified.
func Apply(products []catalog.Product, f Filter) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Title is the listing headline for f; a shopper's own query always wins.
func Title(f Filter, originalQuery string) string {
	if q := strings.TrimSpace(originalQuery); q != "" {
		return q
	}
	switch ParseFeatured(string(f.Featured)) {
	case FeaturedNew:
		return "New Arrivals"
	case FeaturedBestSeller:
		return "Best Sellers"
	}
	if a := catalog.ParseActivity(string(f.Activity)); a != "" {
		return string(a) + " Gear"
	}
	return "All Gear"
}
