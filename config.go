package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	Port         string
	AssetDir     string
	OutputDir    string
	LetterWidths string // JSON letter table, empty for the built-in one
	FontFile     string
	Fill         string
	MinWidth     int
	MaxWidth     int
	RasterScale  float64
	AllowOrigins []string
}

func DefaultConfig() Config {
	return Config{
		Port:         "8000",
		AssetDir:     "assets",
		OutputDir:    "Warenkorb",
		Fill:         defaultFill,
		MinWidth:     DefaultMinWidth,
		MaxWidth:     DefaultMaxWidth,
		RasterScale:  defaultRasterScale,
		AllowOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
	}
}

// LoadConfig applies an optional .env file and then the environment to the defaults.
// A missing .env file is not an error.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("failed to load '%s': %w", envFile, err)
			}
			log.Printf("No %s file found, using environment only", envFile)
		}
	}

	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString("MEDAL_PORT", &cfg.Port)
	setString("MEDAL_ASSET_DIR", &cfg.AssetDir)
	setString("MEDAL_OUTPUT_DIR", &cfg.OutputDir)
	setString("MEDAL_LETTER_WIDTHS", &cfg.LetterWidths)
	setString("MEDAL_FONT_FILE", &cfg.FontFile)
	setString("MEDAL_FILL", &cfg.Fill)

	for key, dst := range map[string]*int{"MEDAL_MIN_WIDTH": &cfg.MinWidth, "MEDAL_MAX_WIDTH": &cfg.MaxWidth} {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s must be a positive integer, got '%s'", key, v)
		}
		*dst = n
	}
	if v, ok := os.LookupEnv("MEDAL_RASTER_SCALE"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return cfg, fmt.Errorf("MEDAL_RASTER_SCALE must be a positive number, got '%s'", v)
		}
		cfg.RasterScale = f
	}

	if cfg.MinWidth > cfg.MaxWidth {
		return cfg, fmt.Errorf("minimum width %d exceeds maximum width %d", cfg.MinWidth, cfg.MaxWidth)
	}
	return cfg, nil
}

// NewPricerFromConfig loads the letter table named by cfg.
func NewPricerFromConfig(cfg Config) (*Pricer, error) {
	letters, err := LoadLetterWidths(cfg.LetterWidths)
	if err != nil {
		return nil, err
	}
	return NewPricer(letters, cfg.MinWidth, cfg.MaxWidth), nil
}

func (cfg Config) SVGOptions() SVGOptions {
	opts := DefaultSVGOptions()
	opts.Fill = cfg.Fill
	opts.AssetDir = cfg.AssetDir
	return opts
}

func (cfg Config) RasterOptions() RasterOptions {
	return RasterOptions{
		Scale:    cfg.RasterScale,
		Fill:     cfg.Fill,
		FontFile: cfg.FontFile,
		AssetDir: cfg.AssetDir,
	}
}
