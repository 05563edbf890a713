// Package config loads the viewer settings from defaults, an optional YAML
// file, an optional .env file and PHOTOVIEWER_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"photoviewer/internal/picture"
	"photoviewer/internal/slideshow"
	"photoviewer/internal/zoom"
)

const (
	appName        = "photoviewer"
	configFileName = "config.yaml"
	defaultEnvFile = ".env"
	envPrefix      = "PHOTOVIEWER_"

	defaultWindowWidth    = 1200
	defaultWindowHeight   = 800
	defaultMaxLogMessages = 100
	maxThumbnailSize      = 512
)

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// Config holds the viewer settings.
type Config struct {
	SlideshowSeconds float64 `yaml:"slideshow_seconds"`
	ThumbnailSize    int     `yaml:"thumbnail_size"`
	ZoomLevel        float64 `yaml:"zoom_level"`
	ZoomStep         float64 `yaml:"zoom_step"`
	WindowWidth      int     `yaml:"window_width"`
	WindowHeight     int     `yaml:"window_height"`
	Fullscreen       bool    `yaml:"fullscreen"`
	MaxLogMessages   int     `yaml:"max_log_messages"`
}

// Options control where Load looks for settings.
type Options struct {
	// Path is the YAML file. Empty means DefaultPath, which may be absent.
	Path string
	// EnvFile is the dotenv file. Empty means ".env" in the working directory.
	EnvFile string
	Logger  LoggerFunc
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SlideshowSeconds: slideshow.DefaultInterval.Seconds(),
		ThumbnailSize:    picture.DefaultThumbnailSize,
		ZoomLevel:        zoom.DefaultLevel,
		ZoomStep:         zoom.DefaultStep,
		WindowWidth:      defaultWindowWidth,
		WindowHeight:     defaultWindowHeight,
		MaxLogMessages:   defaultMaxLogMessages,
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// SlideshowInterval returns the slideshow interval as a duration.
func (c Config) SlideshowInterval() time.Duration {
	return time.Duration(c.SlideshowSeconds * float64(time.Second))
}

func logWith(logger LoggerFunc) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		if logger != nil {
			logger(fmt.Sprintf(format, args...))
		} else {
			log.Printf(format, args...)
		}
	}
}

// Load builds the configuration. A missing default config file or .env file
// is not an error. A missing explicit file of either kind is, and so are
// unreadable files and malformed YAML.
func Load(opts Options) (Config, error) {
	logf := logWith(opts.Logger)
	cfg := Default()

	path := opts.Path
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			logf("Warning: %v. Using defaults.", err)
		}
		path = p
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		} else {
			logf("Using config file at: %s", path)
		}
	}

	envFile := opts.EnvFile
	explicitEnv := envFile != ""
	if !explicitEnv {
		envFile = defaultEnvFile
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if explicitEnv || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		dotenv = map[string]string{}
	}
	cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, logf)

	cfg.Validate(opts.Logger)
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool), logf func(string, ...interface{})) {
	floatVar := func(name string, dst *float64) {
		if s, ok := lookup(envPrefix + name); ok && s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				logf("Warning: Invalid %s%s '%s'. Ignoring. Error: %v", envPrefix, name, s, err)
				return
			}
			*dst = v
		}
	}
	intVar := func(name string, dst *int) {
		if s, ok := lookup(envPrefix + name); ok && s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				logf("Warning: Invalid %s%s '%s'. Ignoring. Error: %v", envPrefix, name, s, err)
				return
			}
			*dst = v
		}
	}
	boolVar := func(name string, dst *bool) {
		if s, ok := lookup(envPrefix + name); ok && s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				logf("Warning: Invalid %s%s '%s'. Ignoring. Error: %v", envPrefix, name, s, err)
				return
			}
			*dst = v
		}
	}

	floatVar("SLIDESHOW_SECONDS", &c.SlideshowSeconds)
	intVar("THUMBNAIL_SIZE", &c.ThumbnailSize)
	floatVar("ZOOM_LEVEL", &c.ZoomLevel)
	floatVar("ZOOM_STEP", &c.ZoomStep)
	intVar("WINDOW_WIDTH", &c.WindowWidth)
	intVar("WINDOW_HEIGHT", &c.WindowHeight)
	boolVar("FULLSCREEN", &c.Fullscreen)
	intVar("MAX_LOG_MESSAGES", &c.MaxLogMessages)
}

// Validate replaces out-of-range values with their defaults or bounds,
// logging each change.
func (c *Config) Validate(logger LoggerFunc) {
	logf := logWith(logger)
	def := Default()

	if d := c.SlideshowInterval(); d != slideshow.Clamp(d) {
		clamped := slideshow.Clamp(d)
		logf("Slideshow interval must be between %v and %v. Using %v. Got: %v",
			slideshow.MinInterval, slideshow.MaxInterval, clamped, d)
		c.SlideshowSeconds = clamped.Seconds()
	}
	if c.ThumbnailSize <= 0 || c.ThumbnailSize > maxThumbnailSize {
		logf("Thumbnail size must be in (0, %d]. Defaulting to %d. Got: %d", maxThumbnailSize, def.ThumbnailSize, c.ThumbnailSize)
		c.ThumbnailSize = def.ThumbnailSize
	}
	if c.ZoomLevel < zoom.MinLevel || c.ZoomLevel > zoom.MaxLevel {
		logf("Zoom level must be between %g and %g. Defaulting to %g. Got: %g", zoom.MinLevel, zoom.MaxLevel, def.ZoomLevel, c.ZoomLevel)
		c.ZoomLevel = def.ZoomLevel
	}
	if c.ZoomStep <= 0 {
		logf("Zoom step must be positive. Defaulting to %g. Got: %g", def.ZoomStep, c.ZoomStep)
		c.ZoomStep = def.ZoomStep
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		logf("Window size must be positive. Defaulting to %dx%d. Got: %dx%d", def.WindowWidth, def.WindowHeight, c.WindowWidth, c.WindowHeight)
		c.WindowWidth, c.WindowHeight = def.WindowWidth, def.WindowHeight
	}
	if c.MaxLogMessages <= 0 {
		logf("Max log messages must be positive. Defaulting to %d. Got: %d", def.MaxLogMessages, c.MaxLogMessages)
		c.MaxLogMessages = def.MaxLogMessages
	}
}
