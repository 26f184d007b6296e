package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"PolyBoard/internal/display"
	"PolyBoard/internal/state"
)

const (
	URLScheme   = "polyboard://"
	DefaultPort = 8888
)

// Config holds everything main needs to start a host or a viewer.
type Config struct {
	Tolerance   float64
	Interval    time.Duration
	Port        int
	Advertise   bool
	Discover    bool
	Supersample int
	Width       int
	Height      int
}

func Default() Config {
	return Config{
		Tolerance:   float64(state.DefaultTolerance),
		Interval:    display.DefaultInterval,
		Port:        DefaultPort,
		Advertise:   true,
		Supersample: 2,
		Width:       1024,
		Height:      600,
	}
}

// RegisterFlags binds c's fields to fs, using c's current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Tolerance, "tolerance", c.Tolerance, "Per-axis pixel distance from the first vertex that closes the shape.")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "Display loop polling interval.")
	fs.IntVar(&c.Port, "port", c.Port, "Port the frame publisher listens on.")
	fs.BoolVar(&c.Advertise, "advertise", c.Advertise, "Announce the host over mDNS.")
	fs.BoolVar(&c.Discover, "discover", c.Discover, "Run as a viewer and find the host over mDNS.")
	fs.IntVar(&c.Supersample, "supersample", c.Supersample, "Software renderer supersampling factor.")
	fs.IntVar(&c.Width, "width", c.Width, "Window width.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height.")
}

func (c Config) Validate() error {
	var errs []error
	if c.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("tolerance must be positive, got %v", c.Tolerance))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %v", c.Interval))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.Supersample < 1 {
		errs = append(errs, fmt.Errorf("supersample must be at least 1, got %d", c.Supersample))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	return errors.Join(errs...)
}
