package moyskladclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	moyskladdomain "github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-payroll-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRequestTimeout = 30 * time.Second
	acceptHeader          = "application/json;charset=utf-8"
)

type Client interface {
	Get(ctx context.Context, endpoint, token string, query url.Values, out any) error
	BaseURL() string
	ListRetailStores(ctx context.Context, token string, limit int) ([]moyskladdomain.RetailStore, error)
	ListRetailDemands(ctx context.Context, token, storeID string, date time.Time) ([]moyskladdomain.Demand, error)
	ListDemandPositions(ctx context.Context, token, demandID string, expand bool) ([]moyskladdomain.Position, error)
	GetProduct(ctx context.Context, token, href string) (*moyskladdomain.Product, error)
}

type MoyskladClient struct {
	httpClient *http.Client
	baseURL    string
	retry      RetryPolicy
}

// NewClient cria o cliente da API do MoySklad a partir da configuração.
// O transporte padrão já negocia e descompacta gzip, exigido pela API.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Moysklad.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return New(
		cfg.Moysklad.URL,
		&http.Client{Timeout: timeout},
		NewRetryPolicy(cfg.Retry),
	)
}

func New(baseURL string, httpClient *http.Client, retry RetryPolicy) *MoyskladClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}

	return &MoyskladClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		retry:      retry,
	}
}

func (c *MoyskladClient) BaseURL() string {
	return c.baseURL
}

// Get faz um GET autenticado em endpoint e decodifica a resposta em out.
// endpoint pode ser relativo à URL base ("/entity/product/<id>") ou um href absoluto
// devolvido pela própria API; nesse caso só o caminho é aproveitado.
func (c *MoyskladClient) Get(ctx context.Context, endpoint, token string, query url.Values, out any) error {
	target, err := c.resolve(endpoint, query)
	if err != nil {
		return err
	}

	return c.retry.Run(ctx, func(ctx context.Context) error {
		return c.do(ctx, target, token, out)
	})
}

func (c *MoyskladClient) resolve(endpoint string, query url.Values) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid base url")
	}

	var target *url.URL
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		href, err := url.Parse(endpoint)
		if err != nil {
			return "", errors.Wrapf(err, "invalid href %s", endpoint)
		}

		target = &url.URL{
			Scheme:   base.Scheme,
			Host:     base.Host,
			Path:     href.Path,
			RawQuery: href.RawQuery,
		}
	} else {
		rel, err := url.Parse(strings.TrimPrefix(endpoint, "/"))
		if err != nil {
			return "", errors.Wrapf(err, "invalid endpoint %s", endpoint)
		}

		target = &url.URL{
			Scheme:   base.Scheme,
			Host:     base.Host,
			Path:     strings.TrimSuffix(base.Path, "/") + "/" + rel.Path,
			RawQuery: rel.RawQuery,
		}
	}

	if len(query) > 0 {
		values := target.Query()
		for key, vals := range query {
			for _, v := range vals {
				values.Add(key, v)
			}
		}
		// a API espera %20 nos espaços do filtro, não "+"
		target.RawQuery = strings.ReplaceAll(values.Encode(), "+", "%20")
	}

	return target.String(), nil
}

func (c *MoyskladClient) do(ctx context.Context, target, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, body)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 || out == nil {
		return nil
	}

	if !json.Valid(body) {
		logrus.WithFields(logrus.Fields{
			"path":   req.URL.Path,
			"status": resp.StatusCode,
		}).Warn("Resposta do MoySklad não é um JSON válido, tratando como vazia")
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

func statusError(status int, body []byte) error {
	var errResp moyskladdomain.ErrorResponse
	if len(body) > 0 {
		_ = json.Unmarshal(body, &errResp)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return newAuthError(status, errResp.Code())
	case http.StatusTooManyRequests:
		return &RateLimitError{Message: errResp.Message()}
	}

	message := errResp.Message()
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}

	return &APIError{
		Status:  status,
		Code:    errResp.Code(),
		Message: message,
	}
}
