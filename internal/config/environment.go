package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type DatabaseEnvironment struct {
	Host     string `envconfig:"DB_HOST" required:"true"`
	Port     string `envconfig:"DB_PORT" required:"true"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	Name     string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	TimeZone string `envconfig:"DB_TZ" required:"true"`
}

// LoadDatabaseEnvironment reads the postgres connection settings from the
// environment, after merging an optional .env file into it.
func LoadDatabaseEnvironment(envFiles ...string) (*DatabaseEnvironment, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	var env DatabaseEnvironment
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *DatabaseEnvironment) DSN() string {
	mapping := map[string]string{
		"DB_HOST":     e.Host,
		"DB_PORT":     e.Port,
		"DB_USER":     e.User,
		"DB_PASSWORD": e.Password,
		"DB_NAME":     e.Name,
		"DB_SSLMODE":  e.SSLMode,
		"DB_TZ":       e.TimeZone,
	}
	return os.Expand("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}", func(key string) string {
		return mapping[key]
	})
}
