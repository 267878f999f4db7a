// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every configuration file under the given paths (files or
	// directories) and translates them into one format-agnostic Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
