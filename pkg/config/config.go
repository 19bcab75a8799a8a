package config

import (
	"fmt"
	"os"
)

// Config holds the environment-driven settings shared by every entrypoint.
type Config struct {
	HTTPPort            string
	TenantsTableName    string
	PropertiesTableName string
	PaymentsTableName   string
	RemindersTableName  string
	NotificationsQueue  string
}

// Load reads configuration from environment variables. The four table names
// are required; the queue URL is optional (entrypoints without a notifier
// leave it empty).
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		TenantsTableName:    os.Getenv("DYNAMODB_TENANTS_TABLE_NAME"),
		PropertiesTableName: os.Getenv("DYNAMODB_PROPERTIES_TABLE_NAME"),
		PaymentsTableName:   os.Getenv("DYNAMODB_PAYMENTS_TABLE_NAME"),
		RemindersTableName:  os.Getenv("DYNAMODB_REMINDERS_TABLE_NAME"),
		NotificationsQueue:  os.Getenv("NOTIFICATIONS_QUEUE_URL"),
	}

	if cfg.TenantsTableName == "" || cfg.PropertiesTableName == "" ||
		cfg.PaymentsTableName == "" || cfg.RemindersTableName == "" {
		return nil, fmt.Errorf("one or more DynamoDB table name environment variables are not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
