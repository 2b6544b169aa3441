package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"pixels/internal/logging"
)

// ApplyEnv loads .env files (missing ones are skipped) and overlays environment
// variables on cfg. API_URL and API_KEY are accepted with or without the PIXELS_ prefix;
// the prefixed form wins. Nothing is validated here; see Config.Warnings.
func ApplyEnv(cfg *Config, envFiles ...string) {
	log := logging.Component("config")

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warnf("could not load %s", f)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	pick := func(keys ...string) string {
		for _, k := range keys {
			if s := v.GetString(k); s != "" {
				return s
			}
		}
		return ""
	}

	if s := pick("PIXELS_API_URL", "API_URL"); s != "" {
		cfg.API.BaseURL = s
	}
	if s := pick("PIXELS_API_KEY", "API_KEY"); s != "" {
		cfg.API.Key = s
	}
	if s := pick("PIXELS_DOWNLOAD_DIR"); s != "" {
		cfg.Download.Dir = s
	}
	if s := pick("PIXELS_LOG_LEVEL"); s != "" {
		cfg.Log.Level = s
	}
	if n := v.GetInt("PIXELS_PER_PAGE"); n > 0 {
		cfg.API.PerPage = n
	}

}
