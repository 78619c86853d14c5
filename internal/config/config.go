// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig
	Numbering NumberingConfig
	Quote     QuoteConfig
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev      bool
	Locale   string // BCP 47 tag used for amount display
	Currency string
}

// NumberingConfig holds the default reference-number scheme.
type NumberingConfig struct {
	Prefix    string
	Separator string // "-", "/" or ""
	DateMode  string // "year+month" or "year"
	Length    int    // zero-padded width of the sequence part
}

// QuoteConfig holds new-document defaults.
type QuoteConfig struct {
	ValidityDays   int
	DepositPercent int
	PaymentMethods []string
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		App: AppConfig{
			Dev:      getEnvBool("DEV", true),
			Locale:   getEnv("LOCALE", "fr"),
			Currency: getEnv("CURRENCY", "€"),
		},
		Numbering: NumberingConfig{
			Prefix:    getEnv("NUMBER_PREFIX", "DEVIS"),
			Separator: getEnv("NUMBER_SEPARATOR", "-"),
			DateMode:  getEnv("NUMBER_DATE_MODE", "year+month"),
			Length:    getEnvInt("NUMBER_LENGTH", 4),
		},
		Quote: QuoteConfig{
			ValidityDays:   getEnvInt("QUOTE_VALIDITY_DAYS", 30),
			DepositPercent: getEnvInt("QUOTE_DEPOSIT_PERCENT", 10),
			PaymentMethods: getEnvList("QUOTE_PAYMENT_METHODS", "chèque, virement bancaire"),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

// getEnvList splits a comma-separated environment variable, trimming spaces.
func getEnvList(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
