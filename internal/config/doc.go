// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

/*
Package config provides centralized configuration management for Cinelog.

Configuration is loaded with Koanf v2 from three layered sources, in
increasing precedence: built-in defaults, an optional YAML config file,
and environment variables.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8484)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, production, or test

Database:
  - DUCKDB_PATH: Database file path (default: /data/cinelog.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: Worker threads, 0 = all cores

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQS: Requests per window (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - RATE_LIMIT_DISABLED: Disable rate limiting entirely

Cache and Settings:
  - INSIGHTS_CACHE_TTL: Insights cache TTL (default: 5m)
  - SETTINGS_PATH: BadgerDB settings store path (default: /data/settings)

Logging:
  - LOG_LEVEL: debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line in log output

The config file path can be overridden with CONFIG_PATH.
*/
package config
