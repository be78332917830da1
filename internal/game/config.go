package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/cavern/internal/systems"
	"github.com/samdwyer/cavern/internal/world"
)

// Map layouts accepted in Config.Layout.
const (
	LayoutRooms   = "rooms"
	LayoutScatter = "scatter"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width, Height int
	MaxRooms      int    // Room placement attempts
	ViewRange     int    // Default sight radius for the player and monsters
	Layout        string // rooms or scatter
	AIPolicy      string // idle or approach

	LogFile     string // Where logs go; the terminal belongs to the game
	MetricsAddr string // host:port for the Prometheus endpoint; empty disables it
}

// DefaultConfig returns the configuration used when no environment overrides are set.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		MaxRooms:  world.DefaultRoomParams().MaxRooms,
		ViewRange: 8,
		Layout:    LayoutRooms,
		AIPolicy:  systems.PolicyIdle,
		LogFile:   "cavern.log",
	}
}

// LoadConfig reads CAVERN_* environment variables over the defaults and validates the result.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := envInt64("CAVERN_SEED", &cfg.Seed); err != nil {
		return cfg, err
	}
	for name, dst := range map[string]*int{
		"CAVERN_WIDTH":      &cfg.Width,
		"CAVERN_HEIGHT":     &cfg.Height,
		"CAVERN_MAX_ROOMS":  &cfg.MaxRooms,
		"CAVERN_VIEW_RANGE": &cfg.ViewRange,
	} {
		if err := envInt(name, dst); err != nil {
			return cfg, err
		}
	}
	envString("CAVERN_LAYOUT", &cfg.Layout)
	envString("CAVERN_AI", &cfg.AIPolicy)
	envString("CAVERN_LOG_FILE", &cfg.LogFile)
	envString("CAVERN_METRICS_ADDR", &cfg.MetricsAddr)

	cfg.Layout = strings.ToLower(cfg.Layout)
	cfg.AIPolicy = strings.ToLower(cfg.AIPolicy)

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can produce a playable map.
func (c Config) Validate() error {
	if c.Width < world.MinDimension || c.Height < world.MinDimension {
		return fmt.Errorf("map %dx%d too small: both sides must be at least %d",
			c.Width, c.Height, world.MinDimension)
	}
	if c.MaxRooms < 1 {
		return fmt.Errorf("max rooms must be positive, got %d", c.MaxRooms)
	}
	if c.ViewRange < 1 {
		return fmt.Errorf("view range must be positive, got %d", c.ViewRange)
	}
	switch c.Layout {
	case LayoutRooms, LayoutScatter:
	default:
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	if _, err := systems.NewPolicy(c.AIPolicy); err != nil {
		return err
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = n
	return nil
}

func envInt64(name string, dst *int64) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = n
	return nil
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
