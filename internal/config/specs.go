// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// RegionUID identifies the region this instance serves; the regional
	// store only ever holds records for this region.
	RegionUID  string `envconfig:"region_uid" required:"true"`
	RegionName string `envconfig:"region_name" default:""`

	// GlobalDSN points at the platform-wide account/ledger store,
	// RegionalDSN at this region's identity store.
	GlobalDSN   string `envconfig:"global_dsn" required:"true"`
	RegionalDSN string `envconfig:"regional_dsn" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Signing keys for the two token kinds handed back to callers.
	AccessTokenSecret string        `envconfig:"access_token_secret" required:"true"`
	AppTokenSecret    string        `envconfig:"app_token_secret" required:"true"`
	AccessTokenTTL    time.Duration `envconfig:"access_token_ttl" default:"168h"`
	AppTokenTTL       time.Duration `envconfig:"app_token_ttl" default:"720h"`

	// APIServerURL is the regional cluster endpoint embedded in generated
	// kubeconfigs.
	APIServerURL string `envconfig:"apiserver_url" required:"true"`

	MaxProvisionAttempts int           `envconfig:"max_provision_attempts" default:"3"`
	ReservationStaleness time.Duration `envconfig:"reservation_staleness" default:"15m"`
}
