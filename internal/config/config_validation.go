// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// applyDefaults fills optional settings left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.HashKey == "" {
		cfg.App.HashKey = cfg.App.TokenSignKey
	}
	if cfg.Adapter.AI.Provider == "" {
		cfg.Adapter.AI.Provider = AIProviderOpenAI
	}
	if cfg.Adapter.AI.Model == "" {
		cfg.Adapter.AI.Model = DefaultAIModel
	}
	if cfg.Adapter.AI.RequestTimeout == 0 {
		cfg.Adapter.AI.RequestTimeout = DefaultAIRequestTimeout
	}
	if cfg.Workers.ResetTokenCleanupInterval == 0 {
		cfg.Workers.ResetTokenCleanupInterval = DefaultResetTokenCleanupInterval
	}
}

// validate checks that the final merged [StructuredConfig] carries every
// setting the server needs at startup. All failing groups are reported
// together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 ||
		strings.TrimSpace(cfg.App.AdminEmail) == "" {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.QuestionsDir == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	switch cfg.Adapter.AI.Provider {
	case AIProviderOpenAI:
	case AIProviderHTTP:
		if cfg.Adapter.AI.BaseURL == "" {
			errs = append(errs, ErrInvalidAdapterConfigs)
		}
	default:
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ResetTokenCleanupInterval < 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}
