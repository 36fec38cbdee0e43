package moysklad

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/moyskladclient"
)

const (
	storesLimit          = 100
	connectionCheckLimit = 1
)

type MoyskladIntegrator interface {
	ListRetailStores(ctx context.Context, token string) ([]moyskladdomain.RetailStore, error)
	CheckConnection(ctx context.Context, token string) (bool, error)
	GetDemandsByDate(ctx context.Context, token, storeID string, date time.Time) ([]moyskladdomain.Demand, error)
	GetDemandPositions(ctx context.Context, token, demandID string) ([]moyskladdomain.Position, error)
	ResolveProduct(ctx context.Context, token string, assortment moyskladdomain.Assortment) *moyskladdomain.Product
}

type MoyskladService struct {
	Client moyskladclient.Client
}

func New(client moyskladclient.Client) MoyskladIntegrator {
	return &MoyskladService{
		Client: client,
	}
}

func (s *MoyskladService) ListRetailStores(ctx context.Context, token string) ([]moyskladdomain.RetailStore, error) {
	stores, err := s.Client.ListRetailStores(ctx, token, storesLimit)
	if err != nil {
		return nil, errors.Wrap(err, "list retail stores")
	}

	return stores, nil
}

// CheckConnection valida o token fazendo a menor listagem possível
func (s *MoyskladService) CheckConnection(ctx context.Context, token string) (bool, error) {
	if _, err := s.Client.ListRetailStores(ctx, token, connectionCheckLimit); err != nil {
		return false, errors.Wrap(err, "check connection")
	}

	return true, nil
}

func (s *MoyskladService) GetDemandsByDate(ctx context.Context, token, storeID string, date time.Time) ([]moyskladdomain.Demand, error) {
	demands, err := s.Client.ListRetailDemands(ctx, token, storeID, date)
	if err != nil {
		return nil, errors.Wrapf(err, "list retail demands for %s", date.Format(time.DateOnly))
	}

	return demands, nil
}

// GetDemandPositions sempre pede expand=assortment para trazer os produtos embutidos
func (s *MoyskladService) GetDemandPositions(ctx context.Context, token, demandID string) ([]moyskladdomain.Position, error) {
	positions, err := s.Client.ListDemandPositions(ctx, token, demandID, true)
	if err != nil {
		return nil, errors.Wrapf(err, "list positions of demand %s", demandID)
	}

	return positions, nil
}

// ResolveProduct devolve o produto da posição. Se a busca complementar falhar,
// retorna nil e o item é tratado como venda comum (sem exclusão e sem bônus).
func (s *MoyskladService) ResolveProduct(ctx context.Context, token string, assortment moyskladdomain.Assortment) *moyskladdomain.Product {
	if !assortment.IsProduct() {
		return nil
	}

	if assortment.Kind == moyskladdomain.AssortmentInline {
		return assortment.Product
	}

	product, err := s.Client.GetProduct(ctx, token, assortment.Href)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"href": assortment.Href,
		}).WithError(err).Warn("Não foi possível resolver o produto, item contado como venda comum")
		return nil
	}

	return product
}
