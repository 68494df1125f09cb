package config

import (
	"reflect"
	"strings"

	"objectfs/core/logger"
	"objectfs/core/objectclient"
	"objectfs/core/server"
	"objectfs/core/storage"
	"objectfs/core/utils"
	"objectfs/provider/azure"
	"objectfs/provider/gcs"
	"objectfs/provider/s3"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Client holds the settings shared by every object client.
	Client objectclient.Config `mapstructure:"client"`
	// S3 holds the Amazon S3 settings.
	S3 s3.Config `mapstructure:"s3"`
	// Azure holds the Azure Blob Storage settings.
	Azure azure.Config `mapstructure:"azure"`
	// GCS holds the Google Cloud Storage settings.
	GCS gcs.Config `mapstructure:"gcs"`
	// MinIO holds the MinIO settings.
	MinIO storage.Config `mapstructure:"minio"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CLIENT_PROVIDER -> client.provider)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		utils.ByteSizeHookFunc(),
	))); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Durations are int64 and byte sizes are named ints, so only plain
		// structs are recursed into.
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
