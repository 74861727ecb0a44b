package sound

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds audio settings for the preset player
type Config struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"` // 0.0 - 1.0
	SampleRate   int                `yaml:"sample_rate"`
	Presets      map[string]float64 `yaml:"presets"` // per-preset volume 0.0 - 1.0
}

// DefaultConfig returns audio defaults with every preset at full volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   48000,
		Presets: map[string]float64{
			PresetClick.String():   1.0,
			PresetError.String():   1.0,
			PresetSuccess.String(): 1.0,
			PresetWhoosh.String():  1.0,
			PresetBell.String():    1.0,
		},
	}
}

// LoadConfig reads a yaml config file and applies environment overrides
// A missing file is not an error; defaults plus environment apply
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("sound: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("sound: read %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	cfg.clamp()
	return cfg, nil
}

// applyEnv layers environment variables over the file config
func applyEnv(cfg *Config) {
	// A file with an empty presets: key unmarshals the map as nil
	if cfg.Presets == nil {
		cfg.Presets = DefaultConfig().Presets
	}

	if enabled := os.Getenv("TERMFX_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume as 0-100
	if volume := os.Getenv("TERMFX_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
		}
	}

	// Per-preset volumes as a JSON object, e.g. {"click":0.5,"bell":0}
	if presetVols := os.Getenv("TERMFX_SFX_VOLUMES"); presetVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(presetVols), &volumes); err == nil {
			for name, v := range volumes {
				cfg.Presets[name] = v
			}
		}
	}

	if sampleRate := os.Getenv("TERMFX_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// clamp bounds volumes to [0,1] and guards the sample rate
func (c *Config) clamp() {
	c.MasterVolume = clamp01(c.MasterVolume)
	for name, v := range c.Presets {
		c.Presets[name] = clamp01(v)
	}
	if c.SampleRate <= 0 {
		c.SampleRate = 48000
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// volumeFor returns the effective volume for a preset
func (c *Config) volumeFor(p Preset) float64 {
	vol, ok := c.Presets[p.String()]
	if !ok {
		vol = 1.0
	}
	return vol * c.MasterVolume
}
