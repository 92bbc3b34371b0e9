package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	config "github.com/rostermix/rostermix/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given the config package", t, func() {
		Convey("When building defaults", func() {
			cfg := config.New()

			Convey("Then sensible defaults are set", func() {
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.TeamSize, ShouldEqual, 2)
				So(cfg.MaxTeams, ShouldEqual, 0)
				So(cfg.HistoryLimit, ShouldEqual, 10)
				So(cfg.RandomSeed, ShouldEqual, 0)
				So(cfg.AllowedOrigins, ShouldResemble, []string{"*"})
			})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		ctx := context.Background()

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(ctx)

			Convey("Then the defaults come back", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.TeamSize, ShouldEqual, 2)
			})
		})

		Convey("When environment variables override fields", func() {
			_ = os.Setenv("ROSTERMIX_ADDR", ":7070")
			_ = os.Setenv("ROSTERMIX_TEAM_SIZE", "5")
			_ = os.Setenv("ROSTERMIX_MAX_TEAMS", "8")
			_ = os.Setenv("ROSTERMIX_RANDOM_SEED", "42")
			_ = os.Setenv("ROSTERMIX_SKILL_BALANCING_ENABLED", "true")
			defer func() {
				_ = os.Unsetenv("ROSTERMIX_ADDR")
				_ = os.Unsetenv("ROSTERMIX_TEAM_SIZE")
				_ = os.Unsetenv("ROSTERMIX_MAX_TEAMS")
				_ = os.Unsetenv("ROSTERMIX_RANDOM_SEED")
				_ = os.Unsetenv("ROSTERMIX_SKILL_BALANCING_ENABLED")
			}()

			cfg, err := config.Load(ctx)

			Convey("Then the overrides take effect", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.TeamSize, ShouldEqual, 5)
				So(cfg.MaxTeams, ShouldEqual, 8)
				So(cfg.RandomSeed, ShouldEqual, 42)
				So(cfg.SkillBalancingEnabled, ShouldBeTrue)
			})
		})

		Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":6060\"\nteam_size: 3\nhistory_limit: 4\n"
			So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)

			_ = os.Setenv("ROSTERMIX_CONFIG", path)
			defer func() { _ = os.Unsetenv("ROSTERMIX_CONFIG") }()

			cfg, err := config.Load(ctx)

			Convey("Then file values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.TeamSize, ShouldEqual, 3)
				So(cfg.HistoryLimit, ShouldEqual, 4)
			})

			Convey("And environment variables override the file", func() {
				_ = os.Setenv("ROSTERMIX_ADDR", ":5050")
				defer func() { _ = os.Unsetenv("ROSTERMIX_ADDR") }()

				cfg, err := config.Load(ctx)
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":5050")
				So(cfg.TeamSize, ShouldEqual, 3)
			})
		})

		Convey("When the config file does not exist", func() {
			_ = os.Setenv("ROSTERMIX_CONFIG", "/nonexistent/config.yaml")
			defer func() { _ = os.Unsetenv("ROSTERMIX_CONFIG") }()

			cfg, err := config.Load(ctx)

			Convey("Then loading fails with the load error", func() {
				So(cfg, ShouldBeNil)
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})

		Convey("When validation fails", func() {
			Convey("And the addr is empty", func() {
				_ = os.Setenv("ROSTERMIX_ADDR", "")
				defer func() { _ = os.Unsetenv("ROSTERMIX_ADDR") }()

				cfg, err := config.Load(ctx)
				So(cfg, ShouldBeNil)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})

			Convey("And the team size is below one", func() {
				_ = os.Setenv("ROSTERMIX_TEAM_SIZE", "0")
				defer func() { _ = os.Unsetenv("ROSTERMIX_TEAM_SIZE") }()

				cfg, err := config.Load(ctx)
				So(cfg, ShouldBeNil)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})

			Convey("And the history limit is below one", func() {
				_ = os.Setenv("ROSTERMIX_HISTORY_LIMIT", "0")
				defer func() { _ = os.Unsetenv("ROSTERMIX_HISTORY_LIMIT") }()

				cfg, err := config.Load(ctx)
				So(cfg, ShouldBeNil)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
