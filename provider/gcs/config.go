package gcs

// Config holds the Google Cloud Storage settings.
type Config struct {
	// Bucket holds the files.
	Bucket string `mapstructure:"bucket" default:""`
	// CredentialsFile is a service account key file. Signed URLs are only
	// available when it is set.
	CredentialsFile string `mapstructure:"credentials_file" default:""`
	// Endpoint overrides the API endpoint (e.g. fake-gcs-server). Requests
	// to a custom endpoint are sent without authentication.
	Endpoint string `mapstructure:"endpoint" default:""`
}
