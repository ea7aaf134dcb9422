package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	// Create a temporary config file
	content := `
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
mqtt:
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
simulation:
  seed: 42
  pause_ms: 0
  devices:
    - id: 1
      kind: light
    - id: 2
      kind: motion_sensor
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}

	if cfg.MQTT.Broker.Host != "localhost" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "localhost")
	}

	if cfg.Simulation.Seed != 42 {
		t.Errorf("Simulation.Seed = %d, want 42", cfg.Simulation.Seed)
	}

	if len(cfg.Simulation.Devices) != 2 {
		t.Fatalf("len(Simulation.Devices) = %d, want 2", len(cfg.Simulation.Devices))
	}

	if cfg.Simulation.Devices[1].Kind != "motion_sensor" {
		t.Errorf("Devices[1].Kind = %q, want %q", cfg.Simulation.Devices[1].Kind, "motion_sensor")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
database:
  path: ""
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for empty database.path, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return Default() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "invalid QoS",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: true,
		},
		{
			name: "mqtt enabled without host",
			mutate: func(c *Config) {
				c.MQTT.Enabled = true
				c.MQTT.Broker.Host = ""
			},
			wantErr: true,
		},
		{
			name: "influxdb enabled without token",
			mutate: func(c *Config) {
				c.InfluxDB.Enabled = true
				c.InfluxDB.URL = "http://localhost:8086"
				c.InfluxDB.Token = ""
			},
			wantErr: true,
		},
		{
			name:    "negative pause",
			mutate:  func(c *Config) { c.Simulation.PauseMS = -1 },
			wantErr: true,
		},
		{
			name:    "empty device list",
			mutate:  func(c *Config) { c.Simulation.Devices = nil },
			wantErr: true,
		},
		{
			name: "non-positive device id",
			mutate: func(c *Config) {
				c.Simulation.Devices = []DeviceConfig{{ID: 0, Kind: "light"}}
			},
			wantErr: true,
		},
		{
			name: "duplicate device id",
			mutate: func(c *Config) {
				c.Simulation.Devices = []DeviceConfig{
					{ID: 1, Kind: "light"},
					{ID: 1, Kind: "camera"},
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Pause(t *testing.T) {
	cfg := &Config{Simulation: SimulationConfig{PauseMS: 1500}}

	if got := cfg.Pause().Milliseconds(); got != 1500 {
		t.Errorf("Pause() = %vms, want 1500ms", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := Default()

	// Set environment variables
	t.Setenv("CASITA_DATABASE_PATH", "/custom/path.db")
	t.Setenv("CASITA_MQTT_ENABLED", "true")
	t.Setenv("CASITA_MQTT_HOST", "mqtt.example.com")
	t.Setenv("CASITA_MQTT_USERNAME", "testuser")
	t.Setenv("CASITA_MQTT_PASSWORD", "testpass")
	t.Setenv("CASITA_INFLUXDB_TOKEN", "secret-token")
	t.Setenv("CASITA_SIMULATION_SEED", "1234")
	t.Setenv("CASITA_SIMULATION_PAUSE_MS", "0")

	applyEnvOverrides(cfg)

	if cfg.Database.Path != "/custom/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/custom/path.db")
	}

	if !cfg.MQTT.Enabled {
		t.Error("MQTT.Enabled = false, want true")
	}

	if cfg.MQTT.Broker.Host != "mqtt.example.com" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "mqtt.example.com")
	}

	if cfg.MQTT.Auth.Username != "testuser" {
		t.Errorf("MQTT.Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "testuser")
	}

	if cfg.MQTT.Auth.Password != "testpass" {
		t.Errorf("MQTT.Auth.Password = %q, want %q", cfg.MQTT.Auth.Password, "testpass")
	}

	if cfg.InfluxDB.Token != "secret-token" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret-token")
	}

	if cfg.Simulation.Seed != 1234 {
		t.Errorf("Simulation.Seed = %d, want 1234", cfg.Simulation.Seed)
	}

	if cfg.Simulation.PauseMS != 0 {
		t.Errorf("Simulation.PauseMS = %d, want 0", cfg.Simulation.PauseMS)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Database.Path == "" {
		t.Error("Default should have non-empty Database.Path")
	}

	if cfg.MQTT.Enabled {
		t.Error("Default MQTT.Enabled should be false")
	}

	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("Default MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}

	if len(cfg.Simulation.Devices) != 5 {
		t.Errorf("Default device list has %d entries, want 5", len(cfg.Simulation.Devices))
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}
