package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.Channel, convey.ShouldEqual, "presentation")
				convey.So(cfg.MongoDatabase, convey.ShouldEqual, "podium")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_CHANNEL", "stage-two")
			_ = os.Setenv("PODIUM_PUSHER_APP_ID", "1234567")
			_ = os.Setenv("PODIUM_PUSHER_KEY", "key")
			_ = os.Setenv("PODIUM_PUSHER_SECRET", "secret")
			_ = os.Setenv("PODIUM_PUSHER_CLUSTER", "ap2")
			_ = os.Setenv("PODIUM_MONGO_URI", "mongodb://localhost:27017")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Channel, convey.ShouldEqual, "stage-two")
				convey.So(cfg.PusherAppID, convey.ShouldEqual, "1234567")
				convey.So(cfg.PusherKey, convey.ShouldEqual, "key")
				convey.So(cfg.PusherSecret, convey.ShouldEqual, "secret")
				convey.So(cfg.PusherCluster, convey.ShouldEqual, "ap2")
				convey.So(cfg.MongoURI, convey.ShouldEqual, "mongodb://localhost:27017")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
static_dir: "/srv/podium/web"
channel: "finals"
mongo_database: "judging"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("PODIUM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.StaticDir, convey.ShouldEqual, "/srv/podium/web")
				convey.So(cfg.Channel, convey.ShouldEqual, "finals")
				convey.So(cfg.MongoDatabase, convey.ShouldEqual, "judging")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
channel: "finals"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("PODIUM_CONFIG", tmpFile)
			_ = os.Setenv("PODIUM_ADDR", ":7070")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars should take precedence over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Channel, convey.ShouldEqual, "finals")
			})
		})

		convey.Convey("When the listen address is cleared", func() {
			_ = os.Setenv("PODIUM_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"PODIUM_CONFIG",
		"PODIUM_ADDR",
		"PODIUM_STATIC_DIR",
		"PODIUM_CHANNEL",
		"PODIUM_PUSHER_APP_ID",
		"PODIUM_PUSHER_KEY",
		"PODIUM_PUSHER_SECRET",
		"PODIUM_PUSHER_CLUSTER",
		"PODIUM_MONGO_URI",
		"PODIUM_MONGO_DATABASE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "podium-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
