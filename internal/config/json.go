package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Env       string `json:"env"`
		PublicURL string `json:"public_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			URI      string `json:"uri"`
			Password string `json:"password"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		GRPCPort       int      `json:"grpc_port"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Auth struct {
		JWTSecret           string   `json:"jwt_secret"`
		JWTExpiresIn        Duration `json:"jwt_expires_in"`
		CookieExpiresInDays int      `json:"jwt_cookie_expires_in"`
	} `json:"auth,omitempty"`

	Payment struct {
		StripeSecretKey     string `json:"stripe_secret_key"`
		StripeWebhookSecret string `json:"stripe_webhook_secret"`
	} `json:"payment,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:       jsonCfg.App.Env,
			PublicURL: jsonCfg.App.PublicURL,
		},
		Storage: Storage{
			DB: DB{
				URI:      jsonCfg.Storage.DB.URI,
				Password: jsonCfg.Storage.DB.Password,
			},
		},
		Server: Server{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			GRPCPort:       jsonCfg.Server.GRPCPort,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Auth: Auth{
			JWTSecret:           jsonCfg.Auth.JWTSecret,
			JWTExpiresIn:        time.Duration(jsonCfg.Auth.JWTExpiresIn),
			CookieExpiresInDays: jsonCfg.Auth.CookieExpiresInDays,
		},
		Payment: Payment{
			StripeSecretKey:     jsonCfg.Payment.StripeSecretKey,
			StripeWebhookSecret: jsonCfg.Payment.StripeWebhookSecret,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s" and "90d".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
