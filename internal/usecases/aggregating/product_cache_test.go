package aggregating

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
)

func TestProductCache_Resolve(t *testing.T) {
	t.Run("Requisições simultâneas do mesmo href fazem uma única busca", func(t *testing.T) {
		var calls int32
		release := make(chan struct{})
		fetched := product("p1", "Напитки", false)

		cache := newProductCache(func(ctx context.Context, token string, a moyskladdomain.Assortment) *moyskladdomain.Product {
			atomic.AddInt32(&calls, 1)
			<-release
			return fetched
		})

		var wg sync.WaitGroup
		results := make([]*moyskladdomain.Product, 10)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = cache.Resolve(context.Background(), testToken, reference("p1"))
			}()
		}

		close(release)
		wg.Wait()

		// uma nova chamada depois de tudo concluído vem do cache
		assert.Equal(t, fetched, cache.Resolve(context.Background(), testToken, reference("p1")))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, result := range results {
			assert.Equal(t, fetched, result)
		}
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("Falhas não ficam em cache", func(t *testing.T) {
		var calls int32
		cache := newProductCache(func(ctx context.Context, token string, a moyskladdomain.Assortment) *moyskladdomain.Product {
			atomic.AddInt32(&calls, 1)
			return nil
		})

		assert.Nil(t, cache.Resolve(context.Background(), testToken, reference("p1")))
		assert.Nil(t, cache.Resolve(context.Background(), testToken, reference("p1")))
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("Produtos embutidos não passam pelo cache", func(t *testing.T) {
		inlined := product("p2", "Напитки", true)
		cache := newProductCache(func(ctx context.Context, token string, a moyskladdomain.Assortment) *moyskladdomain.Product {
			return a.Product
		})

		assert.Equal(t, inlined, cache.Resolve(context.Background(), testToken, inline(inlined)))
		assert.Equal(t, 0, cache.Len())
	})
}
