package moyskladclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
)

// PageLimit é o máximo de linhas por chamada. Não há paginação: num dia com mais
// de PageLimit vendas as excedentes ficam de fora.
const PageLimit = 1000

type RetailDemandsResponse = moyskladdomain.ListResponse[moyskladdomain.Demand]

// DemandFilter monta o filtro do dia (00:00:00 a 23:59:59 no fuso de date) para a loja
func DemandFilter(baseURL, storeID string, date time.Time) string {
	day := date.Format(time.DateOnly)

	return fmt.Sprintf(
		"moment>=%s 00:00:00;moment<=%s 23:59:59;retailStore=%s/entity/retailstore/%s",
		day, day, baseURL, storeID,
	)
}

func (c *MoyskladClient) ListRetailDemands(ctx context.Context, token, storeID string, date time.Time) ([]moyskladdomain.Demand, error) {
	var response RetailDemandsResponse

	query := url.Values{}
	query.Set("filter", DemandFilter(c.baseURL, storeID, date))
	query.Set("limit", strconv.Itoa(PageLimit))

	if err := c.Get(ctx, "/entity/retaildemand", token, query, &response); err != nil {
		return nil, err
	}

	return response.Rows, nil
}
