// Package config provides user configuration for ecotrip.
//
// Settings live in a YAML file stored in the platform's configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/ecotrip/config.yaml or $HOME/.config/ecotrip/config.yaml
//   - macOS: $HOME/.config/ecotrip/config.yaml
//   - Windows: %LOCALAPPDATA%\ecotrip\config.yaml
//
// A missing file, or a file that only sets some keys, is filled with
// defaults:
//
//	version: 1
//	geocoding:
//	  base_url: https://api.opencagedata.com
//	  timeout: 10s
//	location:
//	  provider: none        # none, static or gpsd
//	  gpsd_timeout: 5s
//	planner:
//	  chained_mobile_modals: true
//	  calendar_modal: true
//	  demo_dates: false
//
// # Secrets
//
// The OpenCage API key is NEVER written to the YAML file. It is read from
// OPENCAGE_API_KEY (or NEXT_PUBLIC_OPENCAGE_API_KEY) after LoadEnv has
// loaded any .env file from the working directory or the config directory.
// Variables already set in the environment take precedence.
//
// # Thread Safety
//
// Load uses sync.Once for safe initialization across goroutines.
// File writes are protected by a mutex and are atomic.
package config
