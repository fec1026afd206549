package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"gitlab.com/dirk.krummacker/notebook-service/internal/config"
)

var configEnvVars = []string{
	"NOTEBOOK_CONFIG",
	"NOTEBOOK_ENV_FILE",
	"NOTEBOOK_ADDR",
	"NOTEBOOK_DB_DRIVER",
	"NOTEBOOK_DB_DSN",
	"NOTEBOOK_DB_MAX_OPEN_CONNS",
	"NOTEBOOK_REQUEST_LOGGING",
	"NOTEBOOK_SHUTDOWN_TIMEOUT",
	"NOTEBOOK_LOG_LEVEL",
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		// Point at a dotenv file that does not exist so a stray .env cannot leak into the test.
		_ = os.Setenv("NOTEBOOK_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load()

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DBDriver, convey.ShouldEqual, "sqlite3")
				convey.So(cfg.DBDSN, convey.ShouldEqual, "notebook.db")
				convey.So(cfg.DBMaxOpenConns, convey.ShouldEqual, 1)
				convey.So(cfg.RequestLogging, convey.ShouldBeTrue)
				convey.So(cfg.DebugErrors, convey.ShouldBeTrue)
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 10*time.Second)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("NOTEBOOK_ADDR", ":9090")
			_ = os.Setenv("NOTEBOOK_DB_DRIVER", "mysql")
			_ = os.Setenv("NOTEBOOK_DB_DSN", "dirk:secret@tcp(localhost)/test")
			_ = os.Setenv("NOTEBOOK_DB_MAX_OPEN_CONNS", "16")
			_ = os.Setenv("NOTEBOOK_REQUEST_LOGGING", "false")
			_ = os.Setenv("NOTEBOOK_SHUTDOWN_TIMEOUT", "3s")

			cfg, err := config.Load()

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DBDriver, convey.ShouldEqual, "mysql")
				convey.So(cfg.DBDSN, convey.ShouldEqual, "dirk:secret@tcp(localhost)/test")
				convey.So(cfg.DBMaxOpenConns, convey.ShouldEqual, 16)
				convey.So(cfg.RequestLogging, convey.ShouldBeFalse)
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 3*time.Second)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := writeTempFile(t, "config.yaml", `
addr: ":7070"
db_dsn: "/var/lib/notebook/notebook.db"
log_level: debug
`)
			_ = os.Setenv("NOTEBOOK_CONFIG", path)

			cfg, err := config.Load()

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DBDSN, convey.ShouldEqual, "/var/lib/notebook/notebook.db")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})

			convey.Convey("And env vars should take precedence over the file", func() {
				_ = os.Setenv("NOTEBOOK_ADDR", ":6060")
				cfg, err := config.Load()
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When a dotenv file is present", func() {
			path := writeTempFile(t, "service.env", "NOTEBOOK_DB_DSN=/tmp/from-dotenv.db\n")
			_ = os.Setenv("NOTEBOOK_ENV_FILE", path)
			defer func() { _ = os.Unsetenv("NOTEBOOK_DB_DSN") }()

			cfg, err := config.Load()

			convey.Convey("Then its values should be picked up", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DBDSN, convey.ShouldEqual, "/tmp/from-dotenv.db")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("NOTEBOOK_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

			_, err := config.Load()

			convey.Convey("Then it should fail with a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the driver is unknown", func() {
			_ = os.Setenv("NOTEBOOK_DB_DRIVER", "oracle")

			_, err := config.Load()

			convey.Convey("Then it should fail validation", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.New()

		convey.Convey("Then it should be valid", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When addr is empty", func() {
			cfg.Addr = ""
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When db_dsn is empty", func() {
			cfg.DBDSN = ""
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When gin_mode is misspelled", func() {
			cfg.GinMode = "relase"
			err := cfg.Validate()
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "gin_mode")
		})

		convey.Convey("When gin_mode is release", func() {
			cfg.GinMode = "release"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When the pool has no connections", func() {
			cfg.DBMaxOpenConns = 0
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

func clearConfigEnvVars() {
	for _, name := range configEnvVars {
		_ = os.Unsetenv(name)
	}
}

func writeTempFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write %s: %v", path, err)
	}
	return path
}
