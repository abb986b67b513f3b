package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talentlens/growthboard/internal/config"
	"github.com/talentlens/growthboard/internal/domain/scoring"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file or environment overrides", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the defaults are in place", func() {
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.GeminiModel, ShouldEqual, "gemini-2.5-pro")
				So(cfg.FactorWeights["learning_agility"], ShouldEqual, 30)
			})

			Convey("And the configured weights validate", func() {
				So(cfg.Weights().Validate(), ShouldBeNil)
			})
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GROWTHBOARD_ADDR", ":7070")
	t.Setenv("GROWTHBOARD_LOG_LEVEL", "debug")

	Convey("Given environment overrides", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then env values win over defaults", func() {
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "debug")
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\nlog_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GROWTHBOARD_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.LogLevel, ShouldEqual, "warn")
		})
	})
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GROWTHBOARD_CONFIG", path)
	t.Setenv("GROWTHBOARD_ADDR", ":5050")

	Convey("Given both a file and an env var setting the address", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then env takes precedence over the file", func() {
				So(cfg.Addr, ShouldEqual, ":5050")
			})
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("GROWTHBOARD_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	Convey("Given a config file path that does not exist", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(context.Background())
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})
}

func TestLoadInvalidWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	bad := "factor_weights:\n" +
		"  learning_agility: 50\n" +
		"  skill_progression: 25\n" +
		"  adaptability: 20\n" +
		"  innovation_mindset: 15\n" +
		"  feedback_integration: 10\n"
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GROWTHBOARD_CONFIG", path)

	Convey("Given weights that do not sum to 100", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(context.Background())
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}

func TestWeights(t *testing.T) {
	Convey("Given the default config", t, func() {
		cfg := config.New(context.Background())

		Convey("When converting to scoring weights", func() {
			w := cfg.Weights()

			Convey("Then every factor is present with its share", func() {
				So(w, ShouldHaveLength, 5)
				So(w[scoring.LearningAgility], ShouldEqual, 30)
				So(w[scoring.FeedbackIntegration], ShouldEqual, 10)
			})
		})
	})
}
