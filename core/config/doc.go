// Package config loads the application configuration.
//
// Values are read in this order, later sources overriding earlier ones:
//
//  1. the `default` struct tag of every field
//  2. a .env file in the given directory (loaded with godotenv.Overload)
//  3. environment variables, named after the `mapstructure` path with dots
//     replaced by underscores (client.provider -> CLIENT_PROVIDER)
//
// Durations accept Go syntax ("10m") and byte sizes accept human units
// ("20MB", "1 GiB") through decode hooks.
//
// # Sections
//
//   - server: HTTP port, API key, metrics and swagger toggles
//   - log: level and format
//   - client: settings shared by every object client
//   - s3, azure, gcs, minio: provider settings
package config
