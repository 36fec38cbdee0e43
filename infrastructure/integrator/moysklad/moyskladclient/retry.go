package moyskladclient

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-payroll-api/internal/config"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second
	defaultMaxDelay   = 10 * time.Second
)

// RetryPolicy descreve quantas vezes e com qual espera uma chamada é repetida.
// Cada chamada usa sua própria contagem; nada é compartilhado entre chamadas.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Retryable  func(error) bool
	Sleep      func(ctx context.Context, d time.Duration) error
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: defaultMaxRetries,
		BaseDelay:  defaultBaseDelay,
		MaxDelay:   defaultMaxDelay,
		Retryable:  IsRetryable,
		Sleep:      sleepContext,
	}
}

func NewRetryPolicy(cfg config.Retry) RetryPolicy {
	policy := DefaultRetryPolicy()

	if cfg.MaxAttempts >= 0 {
		policy.MaxRetries = cfg.MaxAttempts
	}
	if cfg.BaseDelay > 0 {
		policy.BaseDelay = cfg.BaseDelay
	}
	if cfg.MaxDelay > 0 {
		policy.MaxDelay = cfg.MaxDelay
	}

	return policy
}

// Delay retorna min(BaseDelay * 2^attempt, MaxDelay)
func (p RetryPolicy) Delay(attempt int) time.Duration {
	delay := p.BaseDelay
	for i := 0; i < attempt; i++ {
		if delay >= p.MaxDelay {
			break
		}
		delay *= 2
	}

	if delay > p.MaxDelay {
		return p.MaxDelay
	}

	return delay
}

// Run executa op e repete enquanto o erro for retentável e houver tentativas
func (p RetryPolicy) Run(ctx context.Context, op func(ctx context.Context) error) error {
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsRetryable
	}

	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	for attempt := 0; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}

		if !retryable(err) || attempt >= p.MaxRetries {
			return err
		}

		delay := p.Delay(attempt)
		logrus.WithFields(logrus.Fields{
			"attempt":  attempt + 1,
			"retries":  p.MaxRetries,
			"delay_ms": delay.Milliseconds(),
		}).WithError(err).Warn("Requisição ao MoySklad falhou, tentando novamente")

		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
