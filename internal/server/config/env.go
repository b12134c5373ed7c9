package config

import (
	"time"

	"github.com/spf13/viper"
)

// parseEnv overlays configuration from TASKMASTER_* environment variables.
//
// Recognized variables:
//
//	TASKMASTER_ENDPOINT_ADDR     HTTP bind address
//	TASKMASTER_DATABASE_DSN      PostgreSQL DSN
//	TASKMASTER_SECRET_KEY        session cookie signing key
//	TASKMASTER_SESSION_VALIDITY  session lifetime, e.g. "24h"
func parseEnv(config *Config) {
	v := viper.New()
	v.SetEnvPrefix("TASKMASTER")
	v.AutomaticEnv()

	if s := v.GetString("ENDPOINT_ADDR"); s != "" {
		config.EndpointAddr = s
	}
	if s := v.GetString("DATABASE_DSN"); s != "" {
		config.DatabaseDSN = s
	}
	if s := v.GetString("SECRET_KEY"); s != "" {
		config.SecretKey = s
	}
	if s := v.GetString("SESSION_VALIDITY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			config.SessionValidityDuration = d
		}
	}
}
