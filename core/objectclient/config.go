package objectclient

import (
	"time"

	"objectfs/core/utils"
)

// Filesystem names understood by the provider registry.
const (
	FilesystemS3    = "s3_file_system"
	FilesystemAzure = "azure_file_system"
	FilesystemGCS   = "gcs_file_system"
	FilesystemMinIO = "minio_file_system"
)

// Config holds the settings shared by every object client.
// It is a value type: clients keep a copy and never modify it.
type Config struct {
	// FilesystemClass is the filesystem the host is deployed with.
	FilesystemClass string `mapstructure:"filesystem_class" default:""`
	// Provider is the filesystem selected by the operator.
	Provider string `mapstructure:"provider" default:""`
	// MaxUploadBytes is the upload ceiling. Zero means no client-imposed limit.
	MaxUploadBytes utils.ByteSize `mapstructure:"max_upload_size" default:"0"`
	// PresignedURLsEnabled turns on redirecting downloads to signed URLs.
	PresignedURLsEnabled bool `mapstructure:"presigned_urls_enabled" default:"false"`
	// PresignedMinFileSize is the smallest file served through a signed URL.
	PresignedMinFileSize utils.ByteSize `mapstructure:"presigned_min_file_size" default:"0"`
	// PresignedExpiry is how long a signed URL stays valid.
	PresignedExpiry time.Duration `mapstructure:"presigned_expiry" default:"10m"`
	// TestDelete makes diagnostics verify that delete is not granted.
	TestDelete bool `mapstructure:"test_delete" default:"true"`
	// KeyPrefix is prepended to every object key.
	KeyPrefix string `mapstructure:"key_prefix" default:""`
}

// ProviderMatches reports whether the deployed and selected filesystems agree.
func (c Config) ProviderMatches() bool {
	return c.FilesystemClass != "" && c.FilesystemClass == c.Provider
}

// Expiry returns PresignedExpiry, falling back to ten minutes when unset.
func (c Config) Expiry() time.Duration {
	if c.PresignedExpiry <= 0 {
		return 10 * time.Minute
	}
	return c.PresignedExpiry
}

// ShouldPresign reports whether a file of the given size should be served
// through a signed URL generated by client.
func (c Config) ShouldPresign(client ObjectClient, size int64) bool {
	if !c.PresignedURLsEnabled || client == nil || !client.SupportsPresignedURLs() {
		return false
	}
	return size >= c.PresignedMinFileSize.Bytes()
}
