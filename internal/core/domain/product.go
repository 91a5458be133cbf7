package domain

import "strings"

type (
	// A Product is one purchasable catalog entry. Products are built once
	// at startup and never mutated.
	Product struct {
		ID       int
		Name     string
		Price    float64
		Category string
		Aliases  []string
	}

	// A Category is a grouping view over products. The order of categories
	// and of products within a category is the catalog's stable order.
	Category struct {
		Name     string
		Emoji    string
		Products []Product
	}
)

// A Catalog is the read-only product table with name/alias lookup.
// It is safe for concurrent use.
type Catalog struct {
	categories []Category
	products   []Product
	byID       map[int]Product
	byName     map[string]Product
	byAlias    map[string]Product
}

func NewCatalog(categories []Category) Catalog {
	c := Catalog{
		categories: categories,
		byID:       make(map[int]Product),
		byName:     make(map[string]Product),
		byAlias:    make(map[string]Product),
	}

	for ci := range categories {
		for _, p := range categories[ci].Products {
			p.Category = categories[ci].Name
			c.products = append(c.products, p)
			c.byID[p.ID] = p

			name := normalize(p.Name)
			if _, ok := c.byName[name]; !ok {
				c.byName[name] = p
			}
			for _, alias := range p.Aliases {
				alias = normalize(alias)
				if _, ok := c.byAlias[alias]; !ok {
					c.byAlias[alias] = p
				}
			}
		}
	}
	return c
}

// AllProducts returns every product in stable order: category order,
// then product order within the category.
func (c Catalog) AllProducts() []Product {
	ps := make([]Product, len(c.products))
	copy(ps, c.products)
	return ps
}

func (c Catalog) Categories() []Category {
	cs := make([]Category, len(c.categories))
	copy(cs, c.categories)
	return cs
}

func (c Catalog) FindByID(id int) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// FindByName resolves free text to a product. The text is trimmed and
// lower-cased, then matched against canonical names, then alias lists,
// then canonical names again with a single trailing "s" stripped.
// Absence is reported as ErrProductNotFound, never as a panic.
func (c Catalog) FindByName(text string) (Product, error) {
	term := normalize(text)
	if term == "" {
		return Product{}, ErrProductNotFound
	}

	if p, ok := c.byName[term]; ok {
		return p, nil
	}
	if p, ok := c.byAlias[term]; ok {
		return p, nil
	}
	if singular, ok := strings.CutSuffix(term, "s"); ok {
		if p, ok := c.byName[singular]; ok {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
