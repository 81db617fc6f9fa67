package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sonirico/libemit"
	"github.com/sonirico/libemit/internal/config"
)

func main() {
	if os.Getenv("LIBEMIT_ENV") == "" {
		// A missing .env is fine; the environment may already be populated.
		if err := godotenv.Load(); err != nil {
			log.Debug().Err(err).Msg("no .env file loaded")
		}
	}

	cfg := config.Default()
	if configPath := os.Getenv("LIBEMIT_CONFIG_PATH"); configPath != "" {
		if err := config.LoadConfig(configPath, &cfg); err != nil {
			log.Fatal().Err(err).Msg("cannot load config")
		}
	}

	setLogConfigurations(cfg.Level())

	logger := libemit.NewZerologLogger(log.Logger)

	// The process-wide bus: built once here and handed to every component.
	bus := libemit.NewBus(cfg.Options(logger)...)
	defer bus.Close()

	newGreeter(bus, os.Stdout)

	names := os.Args[1:]
	if len(names) == 0 {
		names = []string{"Ann", "Bo", "Cy"}
	}

	log.Info().Str("version", cfg.Version).Int("guests", len(names)).Msg("greeting")
	run(bus, names)
}

func setLogConfigurations(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
		return file + ":" + strconv.Itoa(line)
	}

	log.Logger = log.With().Caller().Logger()
}
