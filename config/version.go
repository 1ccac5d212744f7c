// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

// Build metadata, set with -ldflags "-X github.com/alaw989/vp-eng-nuxt-sub002/config.Version=..."
var (
	Version   = "dev"
	Commit    string
	Branch    string
	BuildDate string
)
