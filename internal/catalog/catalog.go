// Package catalog holds the static list of services offered on the site.
// The list drives the home page grid, the service detail pages and the
// service selector of the contact form.
package catalog

import (
	"fmt"

	"github.com/tammam101/temox/backend/internal/common"
)

// Service is a single catalog entry.
type Service struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	ShortDesc string `json:"shortDesc"`
	FullDesc  string `json:"fullDesc"`
	Icon      string `json:"icon"`
}

// Catalog is an immutable, ordered set of services. It is safe for
// concurrent use.
type Catalog struct {
	services []Service
	bySlug   map[string]int
}

// New builds a catalog from the given services, keeping their order.
// Slugs must be unique and non-empty.
func New(services []Service) (*Catalog, error) {
	c := &Catalog{
		services: make([]Service, len(services)),
		bySlug:   make(map[string]int, len(services)),
	}
	copy(c.services, services)
	for i, s := range c.services {
		if s.Slug == "" {
			return nil, fmt.Errorf("catalog: service %q has no slug", s.ID)
		}
		if _, dup := c.bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate slug %q", s.Slug)
		}
		c.bySlug[s.Slug] = i
	}
	return c, nil
}

// Default returns the catalog of TEMOX services.
func Default() *Catalog {
	c, err := New(defaultServices)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the services in declaration order. The returned slice is a
// copy; callers may modify it freely.
func (c *Catalog) List() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// FindBySlug returns the service with the given slug, or common.ErrNotFound.
func (c *Catalog) FindBySlug(slug string) (Service, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Service{}, fmt.Errorf("service %q: %w", slug, common.ErrNotFound)
	}
	return c.services[i], nil
}

// Has reports whether slug names a catalog entry.
func (c *Catalog) Has(slug string) bool {
	_, ok := c.bySlug[slug]
	return ok
}
