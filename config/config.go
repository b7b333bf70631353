package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vitrine/internal/infrastructure/blob"
	"vitrine/internal/infrastructure/database"
	"vitrine/internal/infrastructure/session"
	"vitrine/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment  string            `yaml:"environment"`
	Server       ServerConfig      `yaml:"server"`
	Admin        AdminConfig       `yaml:"admin"`
	MinIOClient  blob.ClientConfig `yaml:"minio_client"`
	BlobStore    blob.StoreConfig  `yaml:"blob_store"`
	DBConfig     database.Config   `yaml:"db_config"`
	SessionStore session.Config    `yaml:"session_store"`
	Logger       logger.Config     `yaml:"logger"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.SessionStore.URI = os.Getenv("SESSION_STORE_URI")
	config.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}
	if c.Admin.Email == "" {
		return errors.New("admin.email is required")
	}
	if c.BlobStore.Bucket == "" {
		return errors.New("blob_store.bucket is required")
	}
	if c.BlobStore.PublicBaseURL == "" {
		return errors.New("blob_store.public_base_url is required")
	}

	return nil
}
