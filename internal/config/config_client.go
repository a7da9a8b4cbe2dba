package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when the corresponding setting is
// absent from every source. The sync values reproduce the original web
// client's behavior.
const (
	DefaultRequestTimeout    = 15 * time.Second
	DefaultDebounceDelay     = 2 * time.Second
	DefaultReconcileInterval = time.Minute
	DefaultRegressionRatio   = 0.5
)

// ClientAdapter holds network settings used by the agent transport layer.
type ClientAdapter struct {
	// BaseURL is the sync server base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups agent storage backend settings.
type ClientStorage struct {
	// Local holds the SQLite store settings.
	Local Local
}

// ClientSync holds the engine tunables used by the agent.
type ClientSync struct {
	// DebounceDelay is the scheduler's coalescing window.
	DebounceDelay time.Duration
	// ReconcileInterval is the pending-sync retry cadence.
	ReconcileInterval time.Duration
	// RegressionRatio is the anti-regression richness threshold.
	RegressionRatio float64
}

// ClientConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains outbound transport settings.
	Adapter ClientAdapter
	// Storage contains local store settings.
	Storage ClientStorage
	// Sync contains engine tunables.
	Sync ClientSync
}

// GetClientConfig builds and validates an agent-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, fills engine defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Local: Local{Path: cfg.Storage.Local.Path},
		},
		Sync: ClientSync{
			DebounceDelay:     cfg.Sync.DebounceDelay,
			ReconcileInterval: cfg.Sync.ReconcileInterval,
			RegressionRatio:   cfg.Sync.RegressionRatio,
		},
	}

	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Sync.DebounceDelay <= 0 {
		clientCfg.Sync.DebounceDelay = DefaultDebounceDelay
	}
	if clientCfg.Sync.ReconcileInterval <= 0 {
		clientCfg.Sync.ReconcileInterval = DefaultReconcileInterval
	}
	if clientCfg.Sync.RegressionRatio <= 0 {
		clientCfg.Sync.RegressionRatio = DefaultRegressionRatio
	}

	return clientCfg, clientCfg.validate()
}
