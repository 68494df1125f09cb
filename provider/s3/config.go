package s3

// Config holds the Amazon S3 settings.
type Config struct {
	// Bucket is the bucket holding the files.
	Bucket string `mapstructure:"bucket" default:""`
	// Region of the bucket. When empty it is looked up from the bucket.
	Region string `mapstructure:"region" default:""`
	// Endpoint overrides the S3 endpoint (S3-compatible services).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey and SecretKey are static credentials. When empty the default
	// credential chain is used.
	AccessKey    string `mapstructure:"access_key" default:""`
	SecretKey    string `mapstructure:"secret_key" default:""`
	SessionToken string `mapstructure:"session_token" default:""`
	// Profile selects a shared config profile.
	Profile string `mapstructure:"profile" default:""`
	// UsePathStyle addresses the bucket in the path instead of the host.
	UsePathStyle bool `mapstructure:"use_path_style" default:"false"`
}
