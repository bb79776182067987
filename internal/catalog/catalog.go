package catalog

import (
	"sort"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

// Catalog provides case-insensitive lookup over the distinct items of a dataset.
type Catalog struct {
	items []string
	byKey map[string]string
}

// New builds a Catalog. Each item keeps the spelling it was first seen with.
func New(records []model.Record) *Catalog {
	byKey := make(map[string]string)
	var keys []string
	for _, r := range records {
		k := r.Key()
		if _, ok := byKey[k]; ok {
			continue
		}
		byKey[k] = r.Description
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = byKey[k]
	}
	return &Catalog{items: items, byKey: byKey}
}

// All returns the item names in case-insensitive alphabetical order.
func (c *Catalog) All() []string {
	return c.items
}

// Len returns the number of distinct items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the catalog spelling of name.
func (c *Catalog) Get(name string) (string, bool) {
	item, ok := c.byKey[model.ItemKey(name)]
	return item, ok
}

// Exists reports whether name matches an item, ignoring case.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.byKey[model.ItemKey(name)]
	return ok
}

// Unknown returns the names that match no item.
func (c *Catalog) Unknown(names []string) []string {
	var out []string
	for _, n := range names {
		if !c.Exists(n) {
			out = append(out, n)
		}
	}
	return out
}
