// Package config defines relay configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer optional file and environment overrides in Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// StaticDir is the directory holding the prebuilt web bundle.
	StaticDir string `koanf:"static_dir"`

	// Channel is the single broker channel all events are published to.
	Channel string `koanf:"channel"`

	// Pusher credentials. AppID, Key and Secret are required by the broker
	// client; Cluster selects the broker region.
	PusherAppID   string `koanf:"pusher_app_id"`
	PusherKey     string `koanf:"pusher_key"`
	PusherSecret  string `koanf:"pusher_secret"`
	PusherCluster string `koanf:"pusher_cluster"`

	// MongoURI is the document store connection string. An empty value is
	// tolerated here and fails at the first connection attempt.
	MongoURI string `koanf:"mongo_uri"`

	// MongoDatabase names the database holding evaluation records.
	MongoDatabase string `koanf:"mongo_database"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		StaticDir:     "./web/dist",
		Channel:       "presentation",
		MongoDatabase: "podium",
	}
}
