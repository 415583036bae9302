// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.URI == "" {
		return ErrInvalidStorageConfigs
	}
	for _, p := range passwordPlaceholders {
		if strings.Contains(cfg.Storage.DB.URI, p) && cfg.Storage.DB.Password == "" {
			return ErrMissingDatabasePassword
		}
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 || cfg.Server.GRPCPort < 0 || cfg.Server.GRPCPort > 65535 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.GRPCPort != 0 && cfg.Server.GRPCPort == cfg.Server.Port {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.JWTSecret == "" || cfg.Auth.JWTExpiresIn <= 0 || cfg.Auth.CookieExpiresInDays <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Payment.Enabled() && cfg.Payment.StripeWebhookSecret == "" {
		return ErrInvalidPaymentConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.APIURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
