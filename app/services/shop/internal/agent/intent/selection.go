package intent

import (
	"StrideAI/app/common/consts/biz"
	"StrideAI/app/common/filter"
	"StrideAI/app/dal/catalog"
)

// Selection is a direct UI choice: a menu link, sport tile, price slider position or featured flag.
type Selection struct {
	Category    string
	Activity    string
	Demographic string
	Featured    string
	MaxPrice    float64
}

// FromSelection maps a UI selection to a Filter. Unknown values and sentinels become unconstrained.
func FromSelection(sel Selection) filter.Filter {
	return filter.Filter{
		Category:    catalog.Category(sel.Category),
		Activity:    catalog.Activity(sel.Activity),
		Demographic: catalog.Demographic(sel.Demographic),
		Featured:    filter.Featured(sel.Featured),
		MaxPrice:    sel.MaxPrice,
	}.Normalize()
}

func SaleFilter() filter.Filter {
	return filter.Filter{MaxPrice: biz.SalePriceCap}
}

func SportFilter(activity catalog.Activity) filter.Filter {
	return filter.Filter{Activity: activity}.Normalize()
}

type (
	MenuLink struct {
		Label  string        `json:"label"`
		Filter filter.Filter `json:"filter"`
	}

	MenuColumn struct {
		Title string     `json:"title"`
		Links []MenuLink `json:"links"`
	}

	MenuSection struct {
		Key     string       `json:"key"`
		Columns []MenuColumn `json:"columns"`
	}
)

// Menu returns the storefront navigation. Every audience section links to the same filters;
// the filters carry no demographic.
func Menu() []MenuSection {
	return []MenuSection{
		{Key: "new", Columns: []MenuColumn{featuredColumn(), sportColumn()}},
		{Key: "men", Columns: []MenuColumn{featuredColumn(), sportColumn(), gearColumn()}},
		{Key: "women", Columns: []MenuColumn{featuredColumn(), sportColumn(), gearColumn()}},
		{Key: "kids", Columns: []MenuColumn{featuredColumn(), sportColumn(), gearColumn()}},
	}
}

func featuredColumn() MenuColumn {
	return MenuColumn{
		Title: "Featured",
		Links: []MenuLink{
			{Label: "New Arrivals", Filter: filter.Filter{Featured: filter.FeaturedNew}},
			{Label: "Best Sellers", Filter: filter.Filter{Featured: filter.FeaturedBestSeller}},
		},
	}
}

func sportColumn() MenuColumn {
	links := make([]MenuLink, 0, len(catalog.Activities))
	for _, a := range catalog.Activities {
		links = append(links, MenuLink{Label: string(a), Filter: SportFilter(a)})
	}
	return MenuColumn{Title: "Shop By Sport", Links: links}
}

func gearColumn() MenuColumn {
	links := make([]MenuLink, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		links = append(links, MenuLink{Label: string(c), Filter: filter.Filter{Category: c}})
	}
	return MenuColumn{Title: "Gear & Accessories", Links: links}
}
