package provider

import (
	"context"

	"objectfs/core/config"
	"objectfs/core/errs"
	"objectfs/core/objectclient"
	"objectfs/provider/azure"
	"objectfs/provider/gcs"
	"objectfs/provider/minio"
	"objectfs/provider/s3"

	"go.uber.org/zap"
)

// Names lists the providers New can build, in display order.
var Names = []string{
	objectclient.FilesystemS3,
	objectclient.FilesystemAzure,
	objectclient.FilesystemGCS,
	objectclient.FilesystemMinIO,
}

// New builds the object client selected by cfg.Client.Provider.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (objectclient.ObjectClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("provider", cfg.Client.Provider))

	switch cfg.Client.Provider {
	case objectclient.FilesystemS3:
		return s3.New(ctx, cfg.Client, cfg.S3, logger), nil
	case objectclient.FilesystemAzure:
		return azure.New(cfg.Client, cfg.Azure, logger), nil
	case objectclient.FilesystemGCS:
		return gcs.New(ctx, cfg.Client, cfg.GCS, logger), nil
	case objectclient.FilesystemMinIO:
		return minio.New(cfg.Client, cfg.MinIO, logger), nil
	case "":
		return nil, errs.New(errs.KindConfiguration, "no object storage provider is selected")
	default:
		return nil, errs.Newf(errs.KindConfiguration, "unknown object storage provider %q", cfg.Client.Provider)
	}
}
