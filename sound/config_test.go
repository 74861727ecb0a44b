package sound

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Error("default config disabled")
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("default sample rate = %d, want 48000", cfg.SampleRate)
	}
	for _, p := range []Preset{PresetClick, PresetError, PresetSuccess, PresetWhoosh, PresetBell} {
		if _, ok := cfg.Presets[p.String()]; !ok {
			t.Errorf("default config missing preset %q", p)
		}
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file treated as error: %v", err)
	}
	if cfg.MasterVolume != DefaultConfig().MasterVolume {
		t.Errorf("master volume = %v, want default", cfg.MasterVolume)
	}
}

func TestLoadConfigFromYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sound.yaml")
	data := []byte("enabled: false\nmaster_volume: 0.25\nsample_rate: 44100\npresets:\n  click: 0.5\n  bell: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Enabled {
		t.Error("enabled = true, want false")
	}
	if cfg.MasterVolume != 0.25 {
		t.Errorf("master volume = %v, want 0.25", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.Presets["click"] != 0.5 {
		t.Errorf("click volume = %v, want 0.5", cfg.Presets["click"])
	}
	if cfg.Presets["bell"] != 0 {
		t.Errorf("bell volume = %v, want 0", cfg.Presets["bell"])
	}
}

func TestLoadConfigMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("enabled: [not a bool"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed yaml accepted")
	}
}

// TestLoadConfigEmptyPresetsKey covers a hand-written file that lists
// the presets key with no entries: defaults must survive and env
// overrides must still land instead of writing into a nil map
func TestLoadConfigEmptyPresetsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sound.yaml")
	if err := os.WriteFile(path, []byte("enabled: true\npresets:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TERMFX_SFX_VOLUMES", `{"bell":0.2}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Presets == nil {
		t.Fatal("presets map is nil after empty presets key")
	}
	if cfg.Presets["bell"] != 0.2 {
		t.Errorf("bell volume = %v, want env override 0.2", cfg.Presets["bell"])
	}
	if cfg.Presets["click"] != 1.0 {
		t.Errorf("click volume = %v, want default 1.0", cfg.Presets["click"])
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TERMFX_AUDIO_ENABLED", "false")
	t.Setenv("TERMFX_MASTER_VOLUME", "30")
	t.Setenv("TERMFX_SFX_VOLUMES", `{"whoosh":0.1,"click":0}`)
	t.Setenv("TERMFX_SAMPLE_RATE", "22050")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Enabled {
		t.Error("env enabled override ignored")
	}
	if cfg.MasterVolume != 0.3 {
		t.Errorf("master volume = %v, want 0.3", cfg.MasterVolume)
	}
	if cfg.Presets["whoosh"] != 0.1 {
		t.Errorf("whoosh volume = %v, want 0.1", cfg.Presets["whoosh"])
	}
	if cfg.Presets["click"] != 0 {
		t.Errorf("click volume = %v, want 0", cfg.Presets["click"])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("sample rate = %d, want 22050", cfg.SampleRate)
	}
}

func TestEnvInvalidValuesIgnored(t *testing.T) {
	t.Setenv("TERMFX_AUDIO_ENABLED", "definitely")
	t.Setenv("TERMFX_MASTER_VOLUME", "loud")
	t.Setenv("TERMFX_SAMPLE_RATE", "-5")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Error("invalid env values should leave defaults untouched")
	}
}

func TestClampOutOfRangeVolumes(t *testing.T) {
	t.Setenv("TERMFX_MASTER_VOLUME", "250")
	t.Setenv("TERMFX_SFX_VOLUMES", `{"bell":7.5,"error":-1}`)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("master volume = %v, want clamped 1", cfg.MasterVolume)
	}
	if cfg.Presets["bell"] != 1 {
		t.Errorf("bell volume = %v, want clamped 1", cfg.Presets["bell"])
	}
	if cfg.Presets["error"] != 0 {
		t.Errorf("error volume = %v, want clamped 0", cfg.Presets["error"])
	}
}

func TestVolumeFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0.5
	cfg.Presets["click"] = 0.8

	if got := cfg.volumeFor(PresetClick); got != 0.4 {
		t.Errorf("volumeFor(click) = %v, want 0.4", got)
	}
	// Presets absent from the map play at master volume
	delete(cfg.Presets, "bell")
	if got := cfg.volumeFor(PresetBell); got != 0.5 {
		t.Errorf("volumeFor(bell) = %v, want 0.5", got)
	}
}
