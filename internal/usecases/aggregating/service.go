package aggregating

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad"
	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxConcurrentRequests = 5
	defaultMaxConcurrentDates    = 2
)

type Aggregator interface {
	AggregateDay(ctx context.Context, token, storeID string, date time.Time) (*domain.DayAggregate, error)
	AggregateDates(ctx context.Context, token, storeID string, dates []string) (map[string]domain.DateResult, error)
}

type Service struct {
	integrator            moysklad.MoyskladIntegrator
	classifier            moyskladdomain.Classifier
	maxConcurrentRequests int
	maxConcurrentDates    int
}

func NewService(cfg *config.Config, integrator moysklad.MoyskladIntegrator) *Service {
	return &Service{
		integrator:            integrator,
		classifier:            moyskladdomain.NewClassifier(cfg.Moysklad.ExcludedCategoryPrefix, cfg.Moysklad.BonusAttributeName),
		maxConcurrentRequests: positiveOr(cfg.Aggregation.MaxConcurrentRequests, defaultMaxConcurrentRequests),
		maxConcurrentDates:    positiveOr(cfg.Aggregation.MaxConcurrentDates, defaultMaxConcurrentDates),
	}
}

// demandOutcome é a contribuição de uma venda para o agregado do dia
type demandOutcome struct {
	netSales    int64
	contributes bool
	bonusUnits  float64
}

// AggregateDay calcula as vendas líquidas e as unidades de produtos-alvo de um dia.
// Só a falha ao listar as vendas do dia é retornada; falhas por venda caem no valor de face.
func (s *Service) AggregateDay(ctx context.Context, token, storeID string, date time.Time) (*domain.DayAggregate, error) {
	if storeID == "" {
		return nil, ErrStoreRequired
	}
	if token == "" {
		return nil, ErrTokenRequired
	}

	return s.aggregateDay(ctx, s.newProductCache(), token, storeID, date)
}

func (s *Service) aggregateDay(ctx context.Context, products *productCache, token, storeID string, date time.Time) (*domain.DayAggregate, error) {
	day := date.Format(time.DateOnly)
	logger := logrus.WithFields(logrus.Fields{
		"store_id": storeID,
		"date":     day,
	})

	demands, err := s.integrator.GetDemandsByDate(ctx, token, storeID, date)
	if err != nil {
		return nil, err
	}

	applicable := make([]moyskladdomain.Demand, 0, len(demands))
	for _, demand := range demands {
		if demand.IsApplicable() {
			applicable = append(applicable, demand)
		}
	}

	outcomes := make([]demandOutcome, len(applicable))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentRequests)

	for i, demand := range applicable {
		g.Go(func() error {
			outcomes[i] = s.aggregateDemand(ctx, products, token, demand, logger)
			return nil
		})
	}

	// as tarefas nunca retornam erro; cada uma trata a própria falha
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aggregate := &domain.DayAggregate{Date: day}

	var bonusUnits float64
	for _, outcome := range outcomes {
		if outcome.contributes {
			aggregate.NetSalesTotal += outcome.netSales
			aggregate.ValidDemands++
		}
		bonusUnits += outcome.bonusUnits
	}
	aggregate.BonusEligibleUnits = int64(math.Round(bonusUnits))

	logger.WithFields(logrus.Fields{
		"demands":         len(demands),
		"valid_demands":   aggregate.ValidDemands,
		"net_sales_total": aggregate.NetSalesTotal,
		"bonus_units":     aggregate.BonusEligibleUnits,
	}).Debug("Agregado do dia calculado")

	return aggregate, nil
}

func (s *Service) aggregateDemand(ctx context.Context, products *productCache, token string, demand moyskladdomain.Demand, logger *logrus.Entry) demandOutcome {
	positions, err := s.integrator.GetDemandPositions(ctx, token, demand.ID)
	if err != nil {
		// sem os itens não dá para descontar a categoria excluída; conta o valor de face
		logger.WithField("demand_id", demand.ID).WithError(err).
			Warn("Erro ao buscar itens da venda, contando o valor total da venda")

		return demandOutcome{
			netSales:    demand.Sum.Int64(),
			contributes: true,
		}
	}

	resolved := make([]*moyskladdomain.Product, len(positions))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentRequests)

	for i, position := range positions {
		if !position.Assortment.IsProduct() {
			continue
		}

		g.Go(func() error {
			resolved[i] = products.Resolve(ctx, token, position.Assortment)
			return nil
		})
	}

	_ = g.Wait()

	var excluded int64
	var bonusUnits float64

	for i, position := range positions {
		product := resolved[i]
		if product == nil {
			continue
		}

		if s.classifier.IsExcludedCategory(product) {
			excluded += position.LineTotal()
			continue
		}

		if s.classifier.IsBonusEligible(product) {
			bonusUnits += position.Quantity
		}
	}

	remaining := demand.Sum.Int64() - excluded
	if remaining < 0 {
		remaining = 0
	}

	return demandOutcome{
		netSales:    remaining,
		contributes: remaining > 0,
		bonusUnits:  bonusUnits,
	}
}

// AggregateDates agrega cada data de forma independente. A falha de uma data vira
// uma entrada com erro e não interrompe as demais.
func (s *Service) AggregateDates(ctx context.Context, token, storeID string, dates []string) (map[string]domain.DateResult, error) {
	if storeID == "" {
		return nil, ErrStoreRequired
	}
	if token == "" {
		return nil, ErrTokenRequired
	}

	days, parsed, err := parseDates(dates)
	if err != nil {
		return nil, err
	}

	results := make(map[string]domain.DateResult, len(days))
	products := s.newProductCache()

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.maxConcurrentDates)

	for i, day := range days {
		g.Go(func() error {
			aggregate, err := s.aggregateDay(ctx, products, token, storeID, parsed[i])

			result := domain.DateResult{Aggregate: aggregate}
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"store_id": storeID,
					"date":     day,
				}).WithError(err).Warn("Erro ao agregar vendas da data")

				result = domain.DateResult{Error: err.Error()}
			}

			mu.Lock()
			results[day] = result
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	logrus.WithFields(logrus.Fields{
		"store_id":        storeID,
		"dates":           len(days),
		"cached_products": products.Len(),
	}).Info("Agregação de vendas concluída")

	return results, nil
}

func (s *Service) newProductCache() *productCache {
	return newProductCache(s.integrator.ResolveProduct)
}

// parseDates valida as datas no formato YYYY-MM-DD (fuso local) e remove repetidas
func parseDates(dates []string) ([]string, []time.Time, error) {
	days := make([]string, 0, len(dates))
	parsed := make([]time.Time, 0, len(dates))
	seen := make(map[string]struct{}, len(dates))

	for _, raw := range dates {
		day := strings.TrimSpace(raw)
		if day == "" {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}

		date, err := time.ParseInLocation(time.DateOnly, day, time.Local)
		if err != nil {
			return nil, nil, &DateError{Date: day, Err: ErrInvalidDate}
		}

		seen[day] = struct{}{}
		days = append(days, day)
		parsed = append(parsed, date)
	}

	if len(days) == 0 {
		return nil, nil, ErrDatesRequired
	}

	return days, parsed, nil
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
