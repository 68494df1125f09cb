package azure

// Config holds the Azure Blob Storage settings.
type Config struct {
	// AccountName is the storage account.
	AccountName string `mapstructure:"account_name" default:""`
	// AccountKey is the shared key of the account. Presigned URLs need it;
	// without it the default Azure credential chain is used.
	AccountKey string `mapstructure:"account_key" default:""`
	// Container holds the files.
	Container string `mapstructure:"container" default:""`
	// Endpoint overrides the blob service URL (e.g. Azurite).
	Endpoint string `mapstructure:"endpoint" default:""`
	// MaxRetries is the number of retries of a failed request.
	MaxRetries int32 `mapstructure:"max_retries" default:"1"`
}

// ServiceURL returns the blob service URL of the account.
func (c Config) ServiceURL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return "https://" + c.AccountName + ".blob.core.windows.net/"
}
