package aggregating

import (
	"context"
	"errors"
	"sync"

	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
	"golang.org/x/sync/singleflight"
)

var errUnresolved = errors.New("product not resolved")

type productResolver func(ctx context.Context, token string, assortment moyskladdomain.Assortment) *moyskladdomain.Product

// productCache memoriza, durante uma agregação, os produtos buscados por href.
// Chamadas simultâneas para o mesmo href compartilham uma única requisição.
// Falhas não ficam em cache.
type productCache struct {
	resolve productResolver
	group   singleflight.Group

	mu    sync.RWMutex
	items map[string]*moyskladdomain.Product
}

func newProductCache(resolve productResolver) *productCache {
	return &productCache{
		resolve: resolve,
		items:   make(map[string]*moyskladdomain.Product),
	}
}

func (c *productCache) Resolve(ctx context.Context, token string, assortment moyskladdomain.Assortment) *moyskladdomain.Product {
	if assortment.Kind != moyskladdomain.AssortmentReference || assortment.Href == "" {
		return c.resolve(ctx, token, assortment)
	}

	if product, ok := c.get(assortment.Href); ok {
		return product
	}

	value, _, _ := c.group.Do(assortment.Href, func() (any, error) {
		if product, ok := c.get(assortment.Href); ok {
			return product, nil
		}

		product := c.resolve(ctx, token, assortment)
		if product == nil {
			return nil, errUnresolved
		}

		c.mu.Lock()
		c.items[assortment.Href] = product
		c.mu.Unlock()

		return product, nil
	})

	product, _ := value.(*moyskladdomain.Product)
	return product
}

func (c *productCache) get(href string) (*moyskladdomain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.items[href]
	return product, ok
}

func (c *productCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
