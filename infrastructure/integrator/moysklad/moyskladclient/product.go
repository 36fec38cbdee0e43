package moyskladclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
)

// GetProduct busca um produto pelo href absoluto da API ou pelo id
func (c *MoyskladClient) GetProduct(ctx context.Context, token, href string) (*moyskladdomain.Product, error) {
	endpoint, err := productEndpoint(href)
	if err != nil {
		return nil, err
	}

	var product moyskladdomain.Product
	if err := c.Get(ctx, endpoint, token, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func productEndpoint(href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", errors.New("product href is required")
	}

	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href, nil
	}

	id := href
	if i := strings.LastIndex(strings.TrimSuffix(href, "/"), "/"); i >= 0 {
		id = strings.TrimSuffix(href, "/")[i+1:]
	}

	return "/entity/product/" + url.PathEscape(id), nil
}
