package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/casita-home/casita-core/internal/device"
	"github.com/casita-home/casita-core/internal/history"
	"github.com/casita-home/casita-core/internal/house"
	"github.com/casita-home/casita-core/internal/telemetry"
)

// mockRepository records history writes in memory.
type mockRepository struct {
	runs       []*history.Run
	completed  map[string]history.RunStatus
	executions []*history.SceneExecution
}

func newMockRepository() *mockRepository {
	return &mockRepository{completed: make(map[string]history.RunStatus)}
}

func (m *mockRepository) CreateRun(_ context.Context, run *history.Run) error {
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockRepository) CompleteRun(_ context.Context, id string, status history.RunStatus) error {
	m.completed[id] = status
	return nil
}

func (m *mockRepository) GetRun(context.Context, string) (*history.Run, error) {
	return nil, history.ErrRunNotFound
}

func (m *mockRepository) ListRuns(context.Context, int) ([]history.Run, error) {
	return nil, nil
}

func (m *mockRepository) CreateSceneExecution(_ context.Context, exec *history.SceneExecution) error {
	m.executions = append(m.executions, exec)
	return nil
}

func (m *mockRepository) ListSceneExecutions(context.Context, string, int) ([]history.SceneExecution, error) {
	return nil, nil
}

func TestRunPhases(t *testing.T) {
	h := house.New()
	seedHouse(t, h)

	repo := newMockRepository()
	run := &history.Run{ID: "run-test", Seed: 42, DeviceCount: h.DeviceCount()}
	publisher := telemetry.New(nil, nil, 1)

	var buf strings.Builder
	err := runPhases(context.Background(), h, run, repo, publisher, 0, &buf)
	if err != nil {
		t.Fatalf("runPhases() error = %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "📋 ESTADO ACTUAL DE LOS DISPOSITIVOS:"); got != 2 {
		t.Errorf("state header appears %d times, want 2", got)
	}
	if !strings.Contains(out, "🤖 Ejecutando escena automática...") {
		t.Errorf("output missing scene line: %q", out)
	}

	if len(repo.executions) != 1 {
		t.Fatalf("recorded %d scene executions, want 1", len(repo.executions))
	}
	if repo.executions[0].RunID != "run-test" {
		t.Errorf("execution RunID = %q, want run-test", repo.executions[0].RunID)
	}
}

// seedHouse fills a house with the standard five-device set.
func seedHouse(t *testing.T, h *house.House) {
	t.Helper()
	specs := []struct {
		id   int
		kind device.Kind
	}{
		{1, device.KindLight},
		{2, device.KindLight},
		{3, device.KindCamera},
		{4, device.KindCamera},
		{5, device.KindMotionSensor},
	}
	for _, s := range specs {
		d, err := device.New(s.kind, s.id, nil)
		if err != nil {
			t.Fatalf("building device %d: %v", s.id, err)
		}
		h.AddDevice(d)
	}
}

func TestPause(t *testing.T) {
	t.Run("zero duration returns immediately", func(t *testing.T) {
		if err := pause(context.Background(), 0); err != nil {
			t.Errorf("pause(0) error = %v", err)
		}
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := pause(ctx, time.Minute)
		if err == nil {
			t.Error("pause() with cancelled context should return an error")
		}
	})
}

// TestRun_FullSimulation exercises the complete scripted run with both
// optional backends disabled.
func TestRun_FullSimulation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")
	dbPath := filepath.Join(tmpDir, "test.db")

	configContent := `
database:
  path: "` + dbPath + `"
  wal_mode: true
  busy_timeout: 5

mqtt:
  enabled: false

influxdb:
  enabled: false

logging:
  level: error
  format: text
  output: stderr

simulation:
  seed: 42
  pause_ms: 0
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("CASITA_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := run(ctx); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	// The run should have been recorded
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

// TestGetConfigPath_Default verifies default config path.
func TestGetConfigPath_Default(t *testing.T) {
	t.Setenv("CASITA_CONFIG", "")

	path := getConfigPath()
	if path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

// TestGetConfigPath_EnvOverride verifies environment variable override.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	expected := "/custom/path/config.yaml"
	t.Setenv("CASITA_CONFIG", expected)

	path := getConfigPath()
	if path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}
