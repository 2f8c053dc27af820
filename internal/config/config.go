package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env       string
	Port      string
	JWTSecret string
	Database  Database
}

type Database struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

// Load reads configuration from the environment. Defaults cover
// everything except the database credentials and the signing secret.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "4001")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_OPEN", 25)
	v.SetDefault("DB_MAX_IDLE", 25)
	v.SetDefault("DB_MAX_LIFETIME", 300) // seconds

	cfg := &Config{
		Env:       v.GetString("ENV"),
		Port:      v.GetString("PORT"),
		JWTSecret: v.GetString("JWT_SECRET"),
		Database: Database{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			MaxOpen:     v.GetInt("DB_MAX_OPEN"),
			MaxIdle:     v.GetInt("DB_MAX_IDLE"),
			MaxLifetime: time.Duration(v.GetInt("DB_MAX_LIFETIME")) * time.Second,
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return nil, fmt.Errorf("config: DB_USER and DB_NAME are required")
	}

	return cfg, nil
}

// DSN builds the Postgres connection string. sslmode=require keeps the
// transport encrypted without verifying the server certificate.
func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=require",
		d.User, d.Password, d.Host, d.Port, d.Name)
}
