package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/cubot"
	"github.com/ezrec/cubot/npc"
	"github.com/ezrec/cubot/translate"
	"github.com/ezrec/cubot/world"
)

var (
	logLevel   string // Log verbosity level
	configPath string // YAML game configuration
	language   string // Message locale
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cubot",
	Short: "Tick simulator for programmable Cubot worlds",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if len(language) != 0 {
			translate.SetLocale(language)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Game configuration YAML file")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "Message locale (default from the environment)")
}

// loadConfig reads the --config file, or the defaults if none is given.
func loadConfig() *config.Config {
	if len(configPath) == 0 {
		return config.Default()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config %s: %v", configPath, err)
	}
	return cfg
}

// newCodec returns a codec for every object type.
func newCodec(cfg *config.Config) *world.Codec {
	codec := world.NewCodec()
	cubot.Register(codec, cfg)
	npc.Register(codec, cfg)
	return codec
}

// readProgram reads program source text.
func readProgram(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("Failed to read program %s: %v", path, err)
	}
	return string(data)
}
