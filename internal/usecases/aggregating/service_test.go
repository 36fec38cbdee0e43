package aggregating

import (
	"context"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/mocks"
	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/moyskladclient"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"go.uber.org/mock/gomock"
)

const (
	testToken      = "token"
	testStore      = "store-1"
	tobaccoPath    = "Сигаретная продукция/Сигаретная продукция (табаконисты)"
	bonusAttribute = "Целевой продукт"
	productHref    = "https://api.moysklad.ru/api/remap/1.2/entity/product/"
)

// fakeAPI responde às chamadas do integrador a partir de mapas fixos
type fakeAPI struct {
	demands      map[string][]moyskladdomain.Demand
	demandErrs   map[string]error
	positions    map[string][]moyskladdomain.Position
	positionErrs map[string]error
	products     map[string]*moyskladdomain.Product

	mu            sync.Mutex
	positionCalls map[string]int
	productCalls  map[string]int
}

func (f *fakeAPI) wire(m *mocks.MockMoyskladIntegrator) {
	f.positionCalls = make(map[string]int)
	f.productCalls = make(map[string]int)

	m.EXPECT().
		GetDemandsByDate(gomock.Any(), testToken, testStore, gomock.Any()).
		DoAndReturn(func(ctx context.Context, token, storeID string, date time.Time) ([]moyskladdomain.Demand, error) {
			day := date.Format(time.DateOnly)
			if err := f.demandErrs[day]; err != nil {
				return nil, err
			}
			return f.demands[day], nil
		}).AnyTimes()

	m.EXPECT().
		GetDemandPositions(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(ctx context.Context, token, demandID string) ([]moyskladdomain.Position, error) {
			f.mu.Lock()
			f.positionCalls[demandID]++
			f.mu.Unlock()

			if err := f.positionErrs[demandID]; err != nil {
				return nil, err
			}
			return f.positions[demandID], nil
		}).AnyTimes()

	m.EXPECT().
		ResolveProduct(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, assortment moyskladdomain.Assortment) *moyskladdomain.Product {
			if assortment.Kind == moyskladdomain.AssortmentInline {
				return assortment.Product
			}

			f.mu.Lock()
			f.productCalls[assortment.Href]++
			f.mu.Unlock()

			return f.products[assortment.Href]
		}).AnyTimes()
}

func (f *fakeAPI) positionCallsFor(demandID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.positionCalls[demandID]
}

func (f *fakeAPI) productCallsFor(href string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.productCalls[href]
}

func newTestService(t *testing.T, api *fakeAPI) *Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockMoyskladIntegrator(ctrl)
	api.wire(integrator)

	cfg := &config.Config{
		Moysklad: config.Moysklad{
			ExcludedCategoryPrefix: tobaccoPath,
			BonusAttributeName:     bonusAttribute,
		},
		Aggregation: config.Aggregation{
			MaxConcurrentRequests: 3,
			MaxConcurrentDates:    2,
		},
	}

	return NewService(cfg, integrator)
}

func demand(id string, sum int64) moyskladdomain.Demand {
	return moyskladdomain.Demand{ID: id, Sum: moyskladdomain.Amount(sum)}
}

func voided(id string, sum int64) moyskladdomain.Demand {
	applicable := false
	d := demand(id, sum)
	d.Applicable = &applicable
	return d
}

func product(id, pathName string, bonus bool) *moyskladdomain.Product {
	p := &moyskladdomain.Product{
		Meta:     moyskladdomain.Meta{Href: productHref + id, Type: moyskladdomain.TypeProduct},
		ID:       id,
		Name:     id,
		PathName: pathName,
	}
	if bonus {
		p.Attributes = []moyskladdomain.Attribute{{Name: bonusAttribute, Type: "boolean", Value: jsoniter.RawMessage("true")}}
	}
	return p
}

func inline(p *moyskladdomain.Product) moyskladdomain.Assortment {
	return moyskladdomain.Assortment{
		Kind:     moyskladdomain.AssortmentInline,
		Href:     p.Meta.Href,
		MetaType: moyskladdomain.TypeProduct,
		Product:  p,
	}
}

func reference(id string) moyskladdomain.Assortment {
	return moyskladdomain.Assortment{
		Kind:     moyskladdomain.AssortmentReference,
		Href:     productHref + id,
		MetaType: moyskladdomain.TypeProduct,
	}
}

func serviceItem() moyskladdomain.Assortment {
	return moyskladdomain.Assortment{
		Kind:     moyskladdomain.AssortmentInline,
		MetaType: moyskladdomain.TypeService,
		Product:  &moyskladdomain.Product{ID: "svc", Name: "Embalagem", PathName: tobaccoPath},
	}
}

func line(qty float64, price, sum int64, assortment moyskladdomain.Assortment) moyskladdomain.Position {
	return moyskladdomain.Position{
		Quantity:   qty,
		Price:      moyskladdomain.Amount(price),
		Sum:        moyskladdomain.Amount(sum),
		Assortment: assortment,
	}
}

var testDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

const testDay = "2024-03-15"

func TestService_AggregateDay(t *testing.T) {
	tobacco := product("tobacco", tobaccoPath+"/Marlboro", false)
	tobaccoFlagged := product("tobacco-flagged", tobaccoPath+"/Parliament", true)
	target := product("target", "Напитки/Энергетики", true)
	plain := product("plain", "Напитки/Вода", false)

	tests := []struct {
		name       string
		api        *fakeAPI
		wantSales  int64
		wantBonus  int64
		wantValid  int
		assertions func(t *testing.T, api *fakeAPI)
	}{
		{
			name: "Vendas anuladas não contribuem",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {voided("d1", 10000), demand("d2", 2000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {line(5, 2000, 10000, inline(target))},
					"d2": {line(1, 2000, 2000, inline(plain))},
				},
			},
			wantSales: 2000,
			wantBonus: 0,
			wantValid: 1,
			assertions: func(t *testing.T, api *fakeAPI) {
				assert.Equal(t, 0, api.positionCallsFor("d1"))
			},
		},
		{
			name: "Venda inteira de tabaco não contribui",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 5000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {line(2, 2500, 5000, inline(tobacco))},
				},
			},
			wantSales: 0,
			wantBonus: 0,
			wantValid: 0,
		},
		{
			name: "Exclusão maior que o total fica em zero",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 4000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {line(2, 3000, 0, inline(tobacco))},
				},
			},
			wantSales: 0,
			wantValid: 0,
		},
		{
			name: "Exclusão parcial, bônus e serviço",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 10000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {
						line(1, 3000, 3000, inline(tobacco)),
						line(2, 1500, 3000, inline(target)),
						line(1, 1000, 1000, inline(plain)),
						line(3, 1000, 3000, serviceItem()),
					},
				},
			},
			wantSales: 7000,
			wantBonus: 2,
			wantValid: 1,
		},
		{
			name: "Item excluído não conta bônus e não afeta outro item",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 6000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {
						line(4, 1000, 4000, inline(tobaccoFlagged)),
						line(1, 2000, 2000, inline(target)),
					},
				},
			},
			wantSales: 2000,
			wantBonus: 1,
			wantValid: 1,
		},
		{
			name: "Falha ao buscar itens conta o valor de face",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 5000), demand("d2", 3000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d2": {line(1, 3000, 3000, inline(tobacco))},
				},
				positionErrs: map[string]error{
					"d1": &moyskladclient.RateLimitError{},
				},
			},
			wantSales: 5000,
			wantBonus: 0,
			wantValid: 1,
		},
		{
			name: "Referências são buscadas uma vez por href",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 3000), demand("d2", 3000), demand("d3", 1000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {line(1, 1000, 1000, reference("target")), line(1, 2000, 2000, reference("tobacco"))},
					"d2": {line(2, 1000, 2000, reference("target")), line(1, 1000, 1000, reference("tobacco"))},
					"d3": {line(1, 1000, 1000, reference("target"))},
				},
				products: map[string]*moyskladdomain.Product{
					productHref + "target":  target,
					productHref + "tobacco": tobacco,
				},
			},
			wantSales: 1000 + 2000 + 1000,
			wantBonus: 4,
			wantValid: 3,
			assertions: func(t *testing.T, api *fakeAPI) {
				assert.Equal(t, 1, api.productCallsFor(productHref+"target"))
				assert.Equal(t, 1, api.productCallsFor(productHref+"tobacco"))
			},
		},
		{
			name: "Produto não resolvido conta como venda comum e sem bônus",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 2000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {line(2, 1000, 2000, reference("missing"))},
				},
			},
			wantSales: 2000,
			wantBonus: 0,
			wantValid: 1,
		},
		{
			name: "Quantidade fracionada de produto-alvo é arredondada no total",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{
					testDay: {demand("d1", 3000), demand("d2", 3000)},
				},
				positions: map[string][]moyskladdomain.Position{
					"d1": {line(0.75, 4000, 3000, inline(target))},
					"d2": {line(0.75, 4000, 3000, inline(target))},
				},
			},
			wantSales: 6000,
			wantBonus: 2,
			wantValid: 2,
		},
		{
			name: "Dia sem vendas",
			api: &fakeAPI{
				demands: map[string][]moyskladdomain.Demand{},
			},
			wantSales: 0,
			wantBonus: 0,
			wantValid: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, tt.api)

			aggregate, err := service.AggregateDay(context.Background(), testToken, testStore, testDate)

			require.NoError(t, err)
			assert.Equal(t, testDay, aggregate.Date)
			assert.Equal(t, tt.wantSales, aggregate.NetSalesTotal)
			assert.Equal(t, tt.wantBonus, aggregate.BonusEligibleUnits)
			assert.Equal(t, tt.wantValid, aggregate.ValidDemands)
			assert.GreaterOrEqual(t, aggregate.NetSalesTotal, int64(0))

			if tt.assertions != nil {
				tt.assertions(t, tt.api)
			}
		})
	}
}

func TestService_AggregateDay_DemandListFailureIsSurfaced(t *testing.T) {
	api := &fakeAPI{
		demandErrs: map[string]error{
			testDay: &moyskladclient.AuthError{Status: 401, Message: "invalid credential"},
		},
	}
	service := newTestService(t, api)

	aggregate, err := service.AggregateDay(context.Background(), testToken, testStore, testDate)

	assert.Nil(t, aggregate)
	var authErr *moyskladclient.AuthError
	assert.True(t, errors.As(err, &authErr))
}

func TestService_AggregateDay_Validation(t *testing.T) {
	service := newTestService(t, &fakeAPI{})

	_, err := service.AggregateDay(context.Background(), testToken, "", testDate)
	assert.ErrorIs(t, err, ErrStoreRequired)

	_, err = service.AggregateDay(context.Background(), "", testStore, testDate)
	assert.ErrorIs(t, err, ErrTokenRequired)
}

func TestService_AggregateDay_Idempotent(t *testing.T) {
	target := product("target", "Напитки", true)
	tobacco := product("tobacco", tobaccoPath, false)

	api := &fakeAPI{
		demands: map[string][]moyskladdomain.Demand{
			testDay: {demand("d1", 9000), demand("d2", 1500), voided("d3", 700)},
		},
		positions: map[string][]moyskladdomain.Position{
			"d1": {line(3, 1000, 3000, inline(target)), line(1, 2000, 2000, reference("tobacco"))},
			"d2": {line(1, 1500, 1500, inline(target))},
		},
		products: map[string]*moyskladdomain.Product{
			productHref + "tobacco": tobacco,
		},
	}
	service := newTestService(t, api)

	first, err := service.AggregateDay(context.Background(), testToken, testStore, testDate)
	require.NoError(t, err)

	second, err := service.AggregateDay(context.Background(), testToken, testStore, testDate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(7000+1500), first.NetSalesTotal)
	assert.Equal(t, int64(4), first.BonusEligibleUnits)
}

func TestService_AggregateDay_CancelledContext(t *testing.T) {
	api := &fakeAPI{
		demands: map[string][]moyskladdomain.Demand{
			testDay: {demand("d1", 1000)},
		},
		positionErrs: map[string]error{
			"d1": context.Canceled,
		},
	}
	service := newTestService(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.AggregateDay(ctx, testToken, testStore, testDate)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_AggregateDates(t *testing.T) {
	target := product("target", "Напитки", true)

	api := &fakeAPI{
		demands: map[string][]moyskladdomain.Demand{
			"2024-03-14": {demand("d1", 2500)},
			"2024-03-16": {demand("d3", 1000)},
		},
		demandErrs: map[string]error{
			"2024-03-15": &moyskladclient.APIError{Status: 500, Message: "HTTP 500: Internal Server Error"},
		},
		positions: map[string][]moyskladdomain.Position{
			"d1": {line(2, 1250, 2500, inline(target))},
			"d3": {line(1, 1000, 1000, reference("target"))},
		},
		products: map[string]*moyskladdomain.Product{
			productHref + "target": target,
		},
	}
	service := newTestService(t, api)

	results, err := service.AggregateDates(context.Background(), testToken, testStore,
		[]string{"2024-03-14", "2024-03-15", "2024-03-16", "2024-03-14"})

	require.NoError(t, err)
	require.Len(t, results, 3)

	d1 := results["2024-03-14"]
	require.False(t, d1.Failed())
	assert.Equal(t, int64(2500), d1.Aggregate.NetSalesTotal)
	assert.Equal(t, int64(2), d1.Aggregate.BonusEligibleUnits)

	d2 := results["2024-03-15"]
	assert.True(t, d2.Failed())
	assert.Contains(t, d2.Error, "HTTP 500")

	d3 := results["2024-03-16"]
	require.False(t, d3.Failed())
	assert.Equal(t, int64(1000), d3.Aggregate.NetSalesTotal)
	assert.Equal(t, int64(1), d3.Aggregate.BonusEligibleUnits)

	assert.Equal(t, 1, api.positionCallsFor("d1"))
}

func TestService_AggregateDates_Validation(t *testing.T) {
	service := newTestService(t, &fakeAPI{})

	tests := []struct {
		name    string
		storeID string
		dates   []string
		wantErr error
	}{
		{name: "Sem loja", storeID: "", dates: []string{testDay}, wantErr: ErrStoreRequired},
		{name: "Sem datas", storeID: testStore, dates: nil, wantErr: ErrDatesRequired},
		{name: "Datas vazias", storeID: testStore, dates: []string{" ", ""}, wantErr: ErrDatesRequired},
		{name: "Data em formato inválido", storeID: testStore, dates: []string{testDay, "15/03/2024"}, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.AggregateDates(context.Background(), testToken, tt.storeID, tt.dates)

			assert.Nil(t, results)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
