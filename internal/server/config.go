package server

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service settings.
type Config struct {
	// Addr is the listen address.
	Addr string
	// BodyLimit caps uploaded backups, in echo's size notation ("8M").
	BodyLimit string
	// MaxDocuments bounds the number of documents held in memory.
	MaxDocuments int
	// Strict rejects uploads with malformed values or unknown item kinds
	// instead of accepting them with warnings.
	Strict          bool
	ShutdownTimeout time.Duration
	Version         string
}

// DefaultConfig returns the default service settings.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		BodyLimit:       "8M",
		MaxDocuments:    64,
		ShutdownTimeout: 5 * time.Second,
		Version:         "dev",
	}
}

// ApplyEnv overrides settings from EXML_ADDR, EXML_BODY_LIMIT,
// EXML_MAX_DOCUMENTS and EXML_STRICT. Unparsable numbers and booleans are
// ignored.
func (c *Config) ApplyEnv() {
	if addr := os.Getenv("EXML_ADDR"); addr != "" {
		c.Addr = addr
	}
	if limit := os.Getenv("EXML_BODY_LIMIT"); limit != "" {
		c.BodyLimit = limit
	}
	if v := os.Getenv("EXML_MAX_DOCUMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxDocuments = n
		}
	}
	if v := os.Getenv("EXML_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
}
