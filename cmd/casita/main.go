// Casita Core - Smart Home Simulator
//
// This is the main entry point for the Casita Core application. It runs
// a scripted simulation: build the configured devices, power everything
// on, show the house state, evaluate the motion scene, and show the
// state again. Each run is recorded in SQLite, and state snapshots can
// optionally be published to MQTT and InfluxDB.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/casita-home/casita-core/migrations"

	"github.com/casita-home/casita-core/internal/device"
	"github.com/casita-home/casita-core/internal/history"
	"github.com/casita-home/casita-core/internal/house"
	"github.com/casita-home/casita-core/internal/infrastructure/config"
	"github.com/casita-home/casita-core/internal/infrastructure/database"
	"github.com/casita-home/casita-core/internal/infrastructure/influxdb"
	"github.com/casita-home/casita-core/internal/infrastructure/logging"
	"github.com/casita-home/casita-core/internal/infrastructure/mqtt"
	"github.com/casita-home/casita-core/internal/telemetry"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// Simulation banner lines, shown around the scripted run.
const (
	bannerStart = "🏠 Simulación de Casa Inteligente 🏠"
	bannerEnd   = "🏁 Fin de la simulación 🏁"
)

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) so a long pause
	// can be skipped cleanly
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Casita Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration. A missing file is not an error for a demo
	// binary; defaults describe the standard five-device run.
	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}

	// Connect to MQTT broker (optional)
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB (optional)
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)

		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
	}

	publisher := buildPublisher(mqttClient, influxClient, byte(cfg.MQTT.QoS), log)
	repo := history.NewSQLiteRepository(db.DB)

	return simulate(ctx, cfg, repo, publisher, log)
}

// simulate executes the scripted run against os.Stdout.
func simulate(ctx context.Context, cfg *config.Config, repo history.Repository, publisher *telemetry.Publisher, log *logging.Logger) error {
	out := os.Stdout

	fmt.Fprintf(out, "%s\n\n", bannerStart)

	// Seed 0 means each run draws fresh readings
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	h := house.New()
	h.SetLogger(log)
	for _, dc := range cfg.Simulation.Devices {
		kind, err := device.ParseKind(dc.Kind)
		if err != nil {
			return fmt.Errorf("device %d: %w", dc.ID, err)
		}
		d, err := device.New(kind, dc.ID, rng)
		if err != nil {
			return fmt.Errorf("device %d: %w", dc.ID, err)
		}
		h.AddDevice(d)
	}

	run := &history.Run{
		ID:          history.GenerateID(),
		Seed:        seed,
		DeviceCount: h.DeviceCount(),
	}
	if err := repo.CreateRun(ctx, run); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	log.Info("simulation run started", "run_id", run.ID, "seed", seed, "devices", run.DeviceCount)

	runErr := runPhases(ctx, h, run, repo, publisher, cfg.Pause(), out)

	status := history.RunCompleted
	if runErr != nil {
		status = history.RunFailed
	}
	if err := repo.CompleteRun(ctx, run.ID, status); err != nil {
		log.Error("completing run record", "run_id", run.ID, "error", err)
	}
	if runErr != nil {
		return runErr
	}

	publisher.PublishRunCompleted(run.ID, seed, run.DeviceCount)
	fmt.Fprintf(out, "\n%s\n", bannerEnd)
	log.Info("simulation run completed", "run_id", run.ID)
	return nil
}

// runPhases walks the scripted sequence: power on, show, scene, show.
func runPhases(ctx context.Context, h *house.House, run *history.Run, repo history.Repository, publisher *telemetry.Publisher, pauseDur time.Duration, out io.Writer) error {
	h.PowerOnAll()

	if err := h.ShowAll(out); err != nil {
		return fmt.Errorf("showing devices: %w", err)
	}
	publisher.PublishDeviceStates(h.Devices())

	if err := pause(ctx, pauseDur); err != nil {
		return err
	}

	fmt.Fprintln(out)
	report, err := h.RunScene(out)
	if err != nil {
		return fmt.Errorf("running scene: %w", err)
	}

	exec := &history.SceneExecution{
		ID:               history.GenerateID(),
		RunID:            run.ID,
		TriggeredAt:      report.TriggeredAt,
		MotionDetected:   report.MotionDetected,
		DevicesActivated: len(report.ActivatedIDs),
		ActivatedIDs:     report.ActivatedIDs,
	}
	if err := repo.CreateSceneExecution(ctx, exec); err != nil {
		return fmt.Errorf("recording scene execution: %w", err)
	}
	publisher.PublishSceneEvent(run.ID, report)

	if err := pause(ctx, pauseDur); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if err := h.ShowAll(out); err != nil {
		return fmt.Errorf("showing devices: %w", err)
	}
	publisher.PublishDeviceStates(h.Devices())

	return nil
}

// pause sleeps for the configured inter-phase delay, honouring cancellation.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// loadConfig loads the config file, falling back to defaults when the
// file does not exist.
func loadConfig(log *logging.Logger) (*config.Config, error) {
	path := getConfigPath()

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("config file not found, using defaults", "path", path)
			cfg = config.Default()
			if validateErr := cfg.Validate(); validateErr != nil {
				return nil, fmt.Errorf("validating default config: %w", validateErr)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log.Info("configuration loaded", "path", path)
	return cfg, nil
}

// getConfigPath returns the configuration file path.
// Uses CASITA_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("CASITA_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// buildPublisher wires the optional backends into a telemetry publisher.
// Nil interfaces matter here: a nil *mqtt.Client stored in a non-nil
// interface would dodge the publisher's nil checks.
func buildPublisher(mqttClient *mqtt.Client, influxClient *influxdb.Client, qos byte, log *logging.Logger) *telemetry.Publisher {
	var broker telemetry.MQTTClient
	if mqttClient != nil {
		broker = mqttClient
	}
	var metrics telemetry.MetricsWriter
	if influxClient != nil {
		metrics = influxClient
	}

	p := telemetry.New(broker, metrics, qos)
	p.SetLogger(log)
	return p
}
