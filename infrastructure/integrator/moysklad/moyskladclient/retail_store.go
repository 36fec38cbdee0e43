package moyskladclient

import (
	"context"
	"net/url"
	"strconv"

	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
)

type RetailStoresResponse = moyskladdomain.ListResponse[moyskladdomain.RetailStore]

func (c *MoyskladClient) ListRetailStores(ctx context.Context, token string, limit int) ([]moyskladdomain.RetailStore, error) {
	var response RetailStoresResponse

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	if err := c.Get(ctx, "/entity/retailstore", token, query, &response); err != nil {
		return nil, err
	}

	return response.Rows, nil
}
