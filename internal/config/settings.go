package config

import (
	"context"
	"errors"
	"strings"
)

var ErrSettingsNotConfigured = errors.New("moysklad settings not configured")

// MoyskladSettings é a credencial e a loja usadas nas consultas ao MoySklad
type MoyskladSettings struct {
	AccessToken string
	StoreID     string
}

// SettingsProvider entrega as configurações do MoySklad de quem faz a requisição.
// O armazenamento real (e a descriptografia do token) fica fora deste serviço.
type SettingsProvider interface {
	MoyskladSettings(ctx context.Context) (*MoyskladSettings, error)
}

type StaticSettingsProvider struct {
	settings MoyskladSettings
}

func NewSettingsProvider(config *Config) *StaticSettingsProvider {
	return &StaticSettingsProvider{
		settings: MoyskladSettings{
			AccessToken: strings.TrimSpace(config.Moysklad.AccessToken),
			StoreID:     strings.TrimSpace(config.Moysklad.StoreID),
		},
	}
}

// HasStore indica se a loja de varejo foi escolhida. Listar lojas e testar a
// conexão só exigem o token.
func (s *MoyskladSettings) HasStore() bool {
	return s.StoreID != ""
}

func (p *StaticSettingsProvider) MoyskladSettings(ctx context.Context) (*MoyskladSettings, error) {
	if p.settings.AccessToken == "" {
		return nil, ErrSettingsNotConfigured
	}

	settings := p.settings
	return &settings, nil
}
