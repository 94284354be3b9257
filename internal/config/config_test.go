package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setXDG(t *testing.T, dir string) {
	t.Helper()
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	t.Cleanup(func() {
		if origXDG != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	})
	_ = os.Setenv("XDG_CONFIG_HOME", dir)
}

func chtmp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		setXDG(t, "/custom/config")
		want := "/custom/config/steuerpilot/steuerpilot.yml"
		if got := GlobalPath(); got != want {
			t.Errorf("GlobalPath() = %v, want %v", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		origXDG := os.Getenv("XDG_CONFIG_HOME")
		defer func() {
			if origXDG != "" {
				_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
			}
		}()
		_ = os.Unsetenv("XDG_CONFIG_HOME")

		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if filepath.Base(got) != "steuerpilot.yml" {
			t.Errorf("GlobalPath() should end with steuerpilot.yml, got %v", got)
		}
	})
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "steuerpilot.yml" {
		t.Errorf("ProjectPath() = %v, want steuerpilot.yml", got)
	}
}

func TestExists(t *testing.T) {
	tmpDir := chtmp(t)
	setXDG(t, filepath.Join(tmpDir, "config"))

	t.Run("no config exists", func(t *testing.T) {
		if Exists() {
			t.Error("Exists() = true, want false when no config files exist")
		}
	})

	t.Run("global config exists", func(t *testing.T) {
		globalPath := GlobalPath()
		if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
			t.Fatalf("Failed to create global config dir: %v", err)
		}
		if err := os.WriteFile(globalPath, []byte("canton: BE\n"), 0644); err != nil {
			t.Fatalf("Failed to write global config: %v", err)
		}
		defer func() { _ = os.Remove(globalPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when global config exists")
		}
	})

	t.Run("project config exists", func(t *testing.T) {
		_ = os.Remove(GlobalPath())

		if err := os.WriteFile(ProjectPath(), []byte("canton: BE\n"), 0644); err != nil {
			t.Fatalf("Failed to write project config: %v", err)
		}
		defer func() { _ = os.Remove(ProjectPath()) }()

		if !Exists() {
			t.Error("Exists() = false, want true when project config exists")
		}
	})
}

func TestWriteGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	setXDG(t, filepath.Join(tmpDir, "config"))

	cfg := &Config{
		Canton:   "BE",
		Year:     2025,
		DataDir:  "/tmp/steuerpilot-test",
		LogLevel: "debug",
		LogFile:  "/tmp/test.log",
		Locale:   "de",
		Theme:    "mocha",
	}

	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	data, err := os.ReadFile(GlobalPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	for _, field := range []string{
		"canton: BE",
		"year: 2025",
		"data_dir: /tmp/steuerpilot-test",
		"log_level: debug",
		"log_file: /tmp/test.log",
		"locale: de",
		"theme: mocha",
	} {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestWriteProject(t *testing.T) {
	chtmp(t)

	cfg := &Config{
		Canton:   "ZH",
		Year:     2025,
		DataDir:  ".steuerpilot",
		LogLevel: "info",
	}

	if err := WriteProject(cfg); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}

	data, err := os.ReadFile(ProjectPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	for _, field := range []string{"canton: ZH", "year: 2025", "data_dir: .steuerpilot"} {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestLoad_NoConfig(t *testing.T) {
	tmpDir := chtmp(t)
	setXDG(t, filepath.Join(tmpDir, "config"))

	for _, env := range []string{"STEUERPILOT_CANTON", "STEUERPILOT_YEAR", "STEUERPILOT_DATA_DIR"} {
		orig := os.Getenv(env)
		env := env
		t.Cleanup(func() {
			if orig != "" {
				_ = os.Setenv(env, orig)
			}
		})
		_ = os.Unsetenv(env)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Canton != "ZH" {
		t.Errorf("Load() default Canton = %v, want ZH", cfg.Canton)
	}
	if cfg.Year != 2025 {
		t.Errorf("Load() default Year = %v, want 2025", cfg.Year)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Load() default LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.DataDir == "" {
		t.Error("Load() default DataDir must not be empty")
	}
}

func TestLoad_WithGlobalConfig(t *testing.T) {
	tmpDir := chtmp(t)
	setXDG(t, filepath.Join(tmpDir, "config"))

	origCanton := os.Getenv("STEUERPILOT_CANTON")
	defer func() {
		if origCanton != "" {
			_ = os.Setenv("STEUERPILOT_CANTON", origCanton)
		}
	}()
	_ = os.Unsetenv("STEUERPILOT_CANTON")

	globalCfg := &Config{
		Canton:   "LU",
		Year:     2024,
		DataDir:  ".global",
		LogLevel: "warn",
		Locale:   "de",
		Theme:    "mocha",
	}
	if err := WriteGlobal(globalCfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Canton != "LU" {
		t.Errorf("Load() Canton = %v, want LU", cfg.Canton)
	}
	if cfg.Year != 2024 {
		t.Errorf("Load() Year = %v, want 2024", cfg.Year)
	}
	if cfg.DataDir != ".global" {
		t.Errorf("Load() DataDir = %v, want .global", cfg.DataDir)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Load() LogLevel = %v, want warn", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  &Config{Canton: "ZH", Year: 2025},
			wantErr: false,
		},
		{
			name:    "missing canton",
			config:  &Config{Canton: "", Year: 2025},
			wantErr: true,
		},
		{
			name:    "implausible year",
			config:  &Config{Canton: "ZH", Year: 1850},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
