package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote identity provider base URL
//	-d local database file path
//	-c/-config json file path with configs
//	-request-timeout remote request timeout (e.g., "15s", "1m")
//	-drain-interval profile sync drain interval (e.g., "5m")
//	-log-to-file write logs to a file next to the executable
func ParseFlags() *StructuredConfig {
	var remoteAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var drainInterval time.Duration
	var logToFile bool

	flag.StringVar(&remoteAddress, "a", "", "Remote identity provider base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&drainInterval, "drain-interval", 0, "Profile sync drain interval (e.g., 5m)")
	flag.BoolVar(&logToFile, "log-to-file", false, "Write logs to a file next to the executable")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogToFile: logToFile,
		},
		Remote: Remote{
			BaseURL:        remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			DrainInterval: drainInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
