package domain

import "math"

type (
	// CatalogStats is the derived catalog view served by the analytics
	// endpoint. Pure computation over the fixed table.
	CatalogStats struct {
		TotalProducts   int
		TotalCategories int
		Categories      []CategoryStats
		PriceRange      PriceRange
	}

	CategoryStats struct {
		Name         string
		ProductCount int
		Products     []string
	}

	PriceRange struct {
		Min     float64
		Max     float64
		Average float64
	}
)

// Stats computes the catalog statistics. The average is rounded to two
// decimals.
func (c Catalog) Stats() CatalogStats {
	ps := c.products
	s := CatalogStats{
		TotalProducts:   len(ps),
		TotalCategories: len(c.categories),
	}

	for _, cat := range c.categories {
		cs := CategoryStats{
			Name:         cat.Name,
			ProductCount: len(cat.Products),
		}
		for _, p := range cat.Products {
			cs.Products = append(cs.Products, p.Name)
		}
		s.Categories = append(s.Categories, cs)
	}

	if len(ps) == 0 {
		return s
	}

	s.PriceRange.Min = ps[0].Price
	s.PriceRange.Max = ps[0].Price
	var sum float64
	for _, p := range ps {
		s.PriceRange.Min = math.Min(s.PriceRange.Min, p.Price)
		s.PriceRange.Max = math.Max(s.PriceRange.Max, p.Price)
		sum += p.Price
	}
	avg := sum / float64(len(ps))
	s.PriceRange.Average = math.Round(avg*100) / 100
	return s
}
