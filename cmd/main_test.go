package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/okian/podium/internal/adapters/broker"
	"github.com/okian/podium/internal/adapters/http/api"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_CHANNEL", "presentation")
			defer func() {
				_ = os.Unsetenv("PODIUM_ADDR")
				_ = os.Unsetenv("PODIUM_CHANNEL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Channel, convey.ShouldEqual, "presentation")
			})
		})

		convey.Convey("When testing broker construction", func() {
			convey.Convey("Then missing credentials should fail construction", func() {
				_, err := broker.New(broker.Credentials{}, "presentation")
				convey.So(err, convey.ShouldNotBeNil)
			})

			convey.Convey("And full credentials should succeed", func() {
				bus, err := broker.New(broker.Credentials{
					AppID:  "1234567",
					Key:    "key",
					Secret: "secret",
				}, "presentation")
				convey.So(err, convey.ShouldBeNil)
				convey.So(bus, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing service and server creation", func() {
			bus, err := broker.New(broker.Credentials{AppID: "1234567", Key: "key", Secret: "secret"}, "presentation")
			convey.So(err, convey.ShouldBeNil)

			store := repository.NewMongoStore("", "podium")
			svc := app.New(store, bus, bus)
			convey.So(svc, convey.ShouldNotBeNil)

			mux := http.NewServeMux()
			api.NewServer(svc).Register(context.Background(), mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should carry the configured timeouts", func() {
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.WriteTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.IdleTimeout, convey.ShouldEqual, 60*time.Second)
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, 5*time.Second)
			})
		})
	})
}
