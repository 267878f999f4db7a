// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from files.
//
// The `config.Model` is the single source of truth for the `builder` and
// `registry` packages. Concrete implementations of the Loader, such as the
// HCL one, are provided in separate packages.
package config
