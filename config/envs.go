package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	UpdatePeriod time.Duration `env:"UPDATE_PERIOD" envDefault:"100ms"` // Fixed simulation step
	DrawPeriod   time.Duration `env:"DRAW_PERIOD" envDefault:"100ms"`   // Minimum time between draw callbacks
	FrameRate    int           `env:"FRAME_RATE" envDefault:"60"`       // Frames per second when running headless
	MaxCatchup   int           `env:"LOOP_MAX_CATCHUP" envDefault:"0"`  // Update steps a single frame may run (0 is unlimited)

	RNGSeed          uint64        `env:"RNG_SEED" envDefault:"0"` // Seed for customer generation (0 seeds from the clock)
	InitialCustomers int           `env:"INITIAL_CUSTOMERS" envDefault:"6"`
	CustomerInterval time.Duration `env:"CUSTOMER_INTERVAL" envDefault:"0s"` // Time between spawned customers (0 disables)
	MaxQueue         int           `env:"MAX_QUEUE" envDefault:"8"`

	AssetDir   string `env:"ASSET_DIR" envDefault:"static"`
	TilesImage string `env:"TILES_IMAGE" envDefault:"tiles.png"`
	FontImage  string `env:"FONT_IMAGE" envDefault:"font.png"`

	ScreenWidth  int `env:"SCREEN_WIDTH" envDefault:"320"`
	ScreenHeight int `env:"SCREEN_HEIGHT" envDefault:"240"`
	SpriteRows   int `env:"SPRITE_ROWS" envDefault:"10"`
	SpriteCols   int `env:"SPRITE_COLS" envDefault:"16"`

	Headless bool `env:"HEADLESS" envDefault:"false"` // Run the loop without a window
	Debug    bool `env:"DEBUG" envDefault:"false"`    // Start with the debug dump enabled

	DebugGrpcAddr string `env:"DEBUG_GRPC_ADDR"` // Listen address of the debug gRPC service (empty disables)
	DebugHTTPAddr string `env:"DEBUG_HTTP_ADDR"` // Listen address of the debug websocket panel (empty disables)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s %v", ColorGreen, ColorReset, ColorRed, ColorReset, err)
	}
	return cfg
}

// Load parses the configuration from the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.UpdatePeriod <= 0 {
		return fmt.Errorf("UPDATE_PERIOD must be positive, got %s", c.UpdatePeriod)
	}
	if c.DrawPeriod <= 0 {
		return fmt.Errorf("DRAW_PERIOD must be positive, got %s", c.DrawPeriod)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("FRAME_RATE must be positive, got %d", c.FrameRate)
	}
	if c.SpriteRows <= 0 || c.SpriteCols <= 0 {
		return fmt.Errorf("SPRITE_ROWS and SPRITE_COLS must be positive, got %dx%d", c.SpriteRows, c.SpriteCols)
	}
	return nil
}
