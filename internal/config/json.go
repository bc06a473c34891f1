package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		HashKey          string   `json:"hash_key"`
		AdminEmail       string   `json:"admin_email"`
		ExposeResetToken bool     `json:"expose_reset_token"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			QuestionsDir   string `json:"questions_dir"`
			CategoriesFile string `json:"categories_file"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		AI struct {
			Provider       string   `json:"provider"`
			APIKey         string   `json:"api_key"`
			BaseURL        string   `json:"base_url"`
			Model          string   `json:"model"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"ai,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ResetTokenCleanupInterval Duration `json:"reset_token_cleanup_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			HashKey:          jsonCfg.App.HashKey,
			AdminEmail:       jsonCfg.App.AdminEmail,
			ExposeResetToken: jsonCfg.App.ExposeResetToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				QuestionsDir:   jsonCfg.Storage.Files.QuestionsDir,
				CategoriesFile: jsonCfg.Storage.Files.CategoriesFile,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			AI: AI{
				Provider:       jsonCfg.Adapter.AI.Provider,
				APIKey:         jsonCfg.Adapter.AI.APIKey,
				BaseURL:        jsonCfg.Adapter.AI.BaseURL,
				Model:          jsonCfg.Adapter.AI.Model,
				RequestTimeout: time.Duration(jsonCfg.Adapter.AI.RequestTimeout),
			},
		},
		Workers: Workers{
			ResetTokenCleanupInterval: time.Duration(jsonCfg.Workers.ResetTokenCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
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
