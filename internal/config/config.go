// Package config provides configuration management for the peers and the
// print server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// PeerConfig holds one peer's configuration.
type PeerConfig struct {
	// PeerID is this peer's unique cluster id. Must be nonzero.
	PeerID uint32

	// GRPCPort is the port the peer's MutexService listens on.
	GRPCPort string

	// HTTPPort is the port for the health/status/metrics API.
	HTTPPort string

	// Peers maps every other peer's id to its gRPC address.
	Peers map[uint32]string

	// PrintServerAddr is the print server's gRPC address.
	PrintServerAddr string

	// RequestTimeout bounds each individual peer-to-peer call.
	RequestTimeout time.Duration

	// PrintTimeout bounds the print call; it must cover the server's
	// simulated delay.
	PrintTimeout time.Duration

	// RequestIntervalMin and RequestIntervalMax bound the random pause
	// between workload rounds.
	RequestIntervalMin time.Duration
	RequestIntervalMax time.Duration

	// LogLevel is the zerolog level (debug, info, warn, error).
	LogLevel string

	// LogPretty enables console output instead of JSON.
	LogPretty bool
}

// PrintServerConfig holds the print server's configuration.
type PrintServerConfig struct {
	// GRPCPort is the port the PrintService listens on.
	GRPCPort string

	// HTTPPort is the port for the health/jobs/metrics API.
	HTTPPort string

	// DatabaseURL is the optional PostgreSQL connection string for job
	// history. Empty means in-memory history.
	DatabaseURL string

	// PrintDelayMin and PrintDelayMax bound the simulated printing delay.
	PrintDelayMin time.Duration
	PrintDelayMax time.Duration

	// LogLevel is the zerolog level (debug, info, warn, error).
	LogLevel string

	// LogPretty enables console output instead of JSON.
	LogPretty bool
}

// LoadPeer loads peer configuration from environment variables with defaults.
func LoadPeer() (*PeerConfig, error) {
	peers, err := ParsePeers(getEnvOrDefault("PEERS", ""))
	if err != nil {
		return nil, err
	}

	cfg := &PeerConfig{
		PeerID:             uint32(getEnvIntOrDefault("PEER_ID", 0)),
		GRPCPort:           getEnvOrDefault("GRPC_PORT", "50052"),
		HTTPPort:           getEnvOrDefault("HTTP_PORT", "8080"),
		Peers:              peers,
		PrintServerAddr:    getEnvOrDefault("PRINT_SERVER_ADDR", "localhost:50051"),
		RequestTimeout:     getEnvDurationOrDefault("REQUEST_TIMEOUT", 5*time.Second),
		PrintTimeout:       getEnvDurationOrDefault("PRINT_TIMEOUT", 30*time.Second),
		RequestIntervalMin: getEnvDurationOrDefault("REQUEST_INTERVAL_MIN", 5*time.Second),
		RequestIntervalMax: getEnvDurationOrDefault("REQUEST_INTERVAL_MAX", 15*time.Second),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogPretty:          getEnvBoolOrDefault("LOG_PRETTY", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the peer configuration for consistency.
func (c *PeerConfig) Validate() error {
	if c.PeerID == 0 {
		return fmt.Errorf("PEER_ID must be a nonzero integer")
	}
	if _, ok := c.Peers[c.PeerID]; ok {
		return fmt.Errorf("PEERS must not contain this peer's own id %d", c.PeerID)
	}
	if c.RequestIntervalMax < c.RequestIntervalMin {
		return fmt.Errorf("REQUEST_INTERVAL_MAX must be >= REQUEST_INTERVAL_MIN")
	}
	return nil
}

// LoadPrintServer loads print server configuration from environment
// variables with defaults.
func LoadPrintServer() (*PrintServerConfig, error) {
	cfg := &PrintServerConfig{
		GRPCPort:      getEnvOrDefault("GRPC_PORT", "50051"),
		HTTPPort:      getEnvOrDefault("HTTP_PORT", "8081"),
		DatabaseURL:   getEnvOrDefault("DATABASE_URL", ""),
		PrintDelayMin: getEnvDurationOrDefault("PRINT_DELAY_MIN", 2*time.Second),
		PrintDelayMax: getEnvDurationOrDefault("PRINT_DELAY_MAX", 3*time.Second),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogPretty:     getEnvBoolOrDefault("LOG_PRETTY", false),
	}

	if cfg.PrintDelayMax < cfg.PrintDelayMin {
		return nil, fmt.Errorf("PRINT_DELAY_MAX must be >= PRINT_DELAY_MIN")
	}
	return cfg, nil
}

// ParsePeers parses a peer list of the form "2=host:port,3=host:port".
// An empty string yields an empty map (single-peer cluster).
func ParsePeers(raw string) (map[uint32]string, error) {
	peers := make(map[uint32]string)
	if raw == "" {
		return peers, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		id, addr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid peer entry %q, want id=host:port", entry)
		}

		parsed, err := strconv.ParseUint(strings.TrimSpace(id), 10, 32)
		if err != nil || parsed == 0 {
			return nil, fmt.Errorf("invalid peer id %q, want a nonzero integer", id)
		}

		addr = strings.TrimSpace(addr)
		if addr == "" {
			return nil, fmt.Errorf("empty address for peer %d", parsed)
		}

		if _, exists := peers[uint32(parsed)]; exists {
			return nil, fmt.Errorf("duplicate peer id %d", parsed)
		}
		peers[uint32(parsed)] = addr
	}

	return peers, nil
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable value as int or the default if not set or invalid.
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns the environment variable value as bool or the default if not set or invalid.
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault returns the environment variable value as a duration or the default if not set or invalid.
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
