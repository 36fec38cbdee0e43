package moyskladclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
)

type DemandPositionsResponse = moyskladdomain.ListResponse[moyskladdomain.Position]

// ListDemandPositions lista os itens de uma venda. Com expand o produto vem embutido
// em cada posição, evitando uma chamada extra por item.
func (c *MoyskladClient) ListDemandPositions(ctx context.Context, token, demandID string, expand bool) ([]moyskladdomain.Position, error) {
	if demandID == "" {
		return nil, errors.New("demand id is required")
	}

	var response DemandPositionsResponse

	query := url.Values{}
	query.Set("limit", strconv.Itoa(PageLimit))
	if expand {
		query.Set("expand", "assortment")
	}

	endpoint := "/entity/retaildemand/" + url.PathEscape(demandID) + "/positions"
	if err := c.Get(ctx, endpoint, token, query, &response); err != nil {
		return nil, err
	}

	return response.Rows, nil
}
