package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sharetube/videoconsole/internal/app"
)

type configVar[T any] struct {
	envKey       string
	flagKey      string
	defaultValue T
}

var (
	catalogPath = configVar[string]{
		envKey:       "CONSOLE_CATALOG",
		flagKey:      "catalog",
		defaultValue: "",
	}
	logLevel = configVar[string]{
		envKey:       "CONSOLE_LOG_LEVEL",
		flagKey:      "log-level",
		defaultValue: "WARN",
	}
	logPath = configVar[string]{
		envKey:       "CONSOLE_LOG_PATH",
		flagKey:      "log-path",
		defaultValue: "",
	}
	prompt = configVar[string]{
		envKey:       "CONSOLE_PROMPT",
		flagKey:      "prompt",
		defaultValue: "> ",
	}
)

func loadAppConfig() *app.AppConfig {
	pflag.String(catalogPath.flagKey, catalogPath.defaultValue, "Catalog file (.txt or .yaml), built-in catalog when empty")
	pflag.String(logLevel.flagKey, logLevel.defaultValue, "Logging level")
	pflag.String(logPath.flagKey, logPath.defaultValue, "Log file path, stderr when empty")
	pflag.String(prompt.flagKey, prompt.defaultValue, "Console prompt")
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)

	viper.BindEnv(catalogPath.flagKey, catalogPath.envKey)
	viper.BindEnv(logLevel.flagKey, logLevel.envKey)
	viper.BindEnv(logPath.flagKey, logPath.envKey)
	viper.BindEnv(prompt.flagKey, prompt.envKey)

	viper.SetDefault(catalogPath.flagKey, catalogPath.defaultValue)
	viper.SetDefault(logLevel.flagKey, logLevel.defaultValue)
	viper.SetDefault(logPath.flagKey, logPath.defaultValue)
	viper.SetDefault(prompt.flagKey, prompt.defaultValue)

	return &app.AppConfig{
		CatalogPath: viper.GetString(catalogPath.flagKey),
		LogLevel:    viper.GetString(logLevel.flagKey),
		LogPath:     viper.GetString(logPath.flagKey),
		Prompt:      viper.GetString(prompt.flagKey),
	}
}

func main() {
	ctx := context.Background()

	appConfig := loadAppConfig()

	jsonConfig, _ := json.MarshalIndent(appConfig, "", "  ")
	fmt.Fprintf(os.Stderr, "starting console with config: %s\n", jsonConfig)

	if err := app.Run(ctx, appConfig, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
