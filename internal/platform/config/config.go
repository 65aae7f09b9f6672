package config

import (
	"os"
	"strconv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr             string
	BoundariesFile   string
	MirrorBufferSize int
}

// FromEnv builds a Server config from environment variables so main stays
// lean.
func FromEnv() Server {
	addr := os.Getenv("SAINT_KERNEL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Empty means the built-in boundary table.
	boundariesFile := os.Getenv("SAINT_BOUNDARIES_FILE")

	mirrorBuffer := 256
	if raw := os.Getenv("SAINT_AUDIT_MIRROR_BUFFER"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			mirrorBuffer = n
		}
	}

	return Server{
		Addr:             addr,
		BoundariesFile:   boundariesFile,
		MirrorBufferSize: mirrorBuffer,
	}
}
