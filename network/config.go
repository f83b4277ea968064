package network

import "time"

// Config holds spectator server configuration
type Config struct {
	// Address to bind when Serve is given none
	Address string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout    time.Duration
	PongTimeout     time.Duration
	PingInterval    time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	// ReadLimit caps inbound frames; spectators only send control frames
	ReadLimit int64
}

// DefaultConfig returns local-use defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		MaxPeers:        16,
		WriteTimeout:    5 * time.Second,
		PongTimeout:     30 * time.Second,
		PingInterval:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		SendQueueSize:   16,
		ReadLimit:       512,
	}
}
