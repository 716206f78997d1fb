// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFiles names files holding the server secrets, for deployments that
// mount them instead of exporting them (Docker and Kubernetes secrets).
// The `file` option makes caarlos0/env read the file the variable points to.
type secretFiles struct {
	EncryptionKey string `env:"APP_ENCRYPTION_KEY_FILE,file"`
	TokenSignKey  string `env:"APP_TOKEN_SIGN_KEY_FILE,file"`
	ClientToken   string `env:"ADAPTER_TOKEN_FILE,file"`
}

// parseEnv populates cfg from environment variables. Struct fields are
// mapped via the `env` and `envPrefix` tags of [StructuredConfig].
//
// A secret set directly wins over its *_FILE counterpart. File contents are
// trimmed so a trailing newline does not become part of the key.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var files secretFiles
	if err := env.Parse(&files); err != nil {
		return fmt.Errorf("error reading secret files: %w", err)
	}

	fillFromFile(&cfg.App.EncryptionKey, files.EncryptionKey)
	fillFromFile(&cfg.App.TokenSignKey, files.TokenSignKey)
	fillFromFile(&cfg.Adapter.Token, files.ClientToken)

	return nil
}

func fillFromFile(dst *string, content string) {
	if *dst != "" {
		return
	}
	*dst = strings.TrimSpace(content)
}
