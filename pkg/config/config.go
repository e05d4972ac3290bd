// Package config reads render settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every setting the command line tools read from the environment
type Config struct {
	ImageWidth      int     // IMAGE_WIDTH
	SamplesPerPixel int     // SPP
	Scene           string  // SCENE
	Aperture        float64 // APERTURE
	MaxDepth        int     // MAX_DEPTH
	Workers         int     // WORKERS, 0 = one per CPU
	Seed            int64   // SEED, 0 = nondeterministic
	Output          string  // OUTPUT, defaults to <scene>.ppm
	PreviewWidth    int     // PREVIEW_WIDTH, 0 = no preview
	TextureDir      string  // TEXTURE_DIR
	TextureMaxSize  int     // TEXTURE_MAX_SIZE, 0 = full resolution

	S3 S3Settings
}

// S3Settings configures optional publishing of the rendered image
type S3Settings struct {
	Bucket    string // S3_BUCKET, empty disables publishing
	Region    string // S3_REGION
	Endpoint  string // S3_ENDPOINT
	AccessKey string // S3_ACCESS_KEY
	SecretKey string // S3_SECRET_KEY
	Prefix    string // S3_PREFIX
}

// Enabled reports whether a bucket is configured
func (s S3Settings) Enabled() bool {
	return s.Bucket != ""
}

// Default returns the settings used when no variable is set
func Default() Config {
	return Config{
		ImageWidth:      1600,
		SamplesPerPixel: 500,
		Scene:           "Random",
		Aperture:        0.1,
		MaxDepth:        50,
		TextureDir:      "resources",
		S3:              S3Settings{Region: "us-east-1"},
	}
}

// ErrInvalidValue is wrapped by every parse or range error
var ErrInvalidValue = errors.New("invalid configuration value")

// Load reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.ImageWidth, err = getEnvInt("IMAGE_WIDTH", cfg.ImageWidth, 1); err != nil {
		return Config{}, err
	}
	if cfg.SamplesPerPixel, err = getEnvInt("SPP", cfg.SamplesPerPixel, 1); err != nil {
		return Config{}, err
	}
	if cfg.Aperture, err = getEnvFloat("APERTURE", cfg.Aperture); err != nil {
		return Config{}, err
	}
	if cfg.MaxDepth, err = getEnvInt("MAX_DEPTH", cfg.MaxDepth, 1); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvInt("WORKERS", cfg.Workers, 0); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvInt64("SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.PreviewWidth, err = getEnvInt("PREVIEW_WIDTH", cfg.PreviewWidth, 0); err != nil {
		return Config{}, err
	}
	if cfg.TextureMaxSize, err = getEnvInt("TEXTURE_MAX_SIZE", cfg.TextureMaxSize, 0); err != nil {
		return Config{}, err
	}

	cfg.Scene = getEnv("SCENE", cfg.Scene)
	cfg.Output = getEnv("OUTPUT", cfg.Scene+".ppm")
	cfg.TextureDir = getEnv("TEXTURE_DIR", cfg.TextureDir)

	cfg.S3 = S3Settings{
		Bucket:    getEnv("S3_BUCKET", ""),
		Region:    getEnv("S3_REGION", cfg.S3.Region),
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
		Prefix:    getEnv("S3_PREFIX", ""),
	}

	if cfg.Aperture < 0 {
		return Config{}, fmt.Errorf("APERTURE=%g: %w: must not be negative", cfg.Aperture, ErrInvalidValue)
	}
	return cfg, nil
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback, min int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w: %v", key, raw, ErrInvalidValue, err)
	}
	if value < min {
		return 0, fmt.Errorf("%s=%d: %w: must be at least %d", key, value, ErrInvalidValue, min)
	}
	return value, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w: %v", key, raw, ErrInvalidValue, err)
	}
	return value, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w: %v", key, raw, ErrInvalidValue, err)
	}
	return value, nil
}
