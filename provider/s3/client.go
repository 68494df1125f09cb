package s3

import (
	"bytes"
	"context"
	"io"

	"objectfs/core/errs"
	"objectfs/core/objectclient"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3manager "github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultRegion = "us-east-1"

var errUnavailable = errs.New(errs.KindUnavailableDependency, "S3 client is not available")

// lookupBucketRegion resolves the region of a bucket with a HeadBucket call.
var lookupBucketRegion = func(ctx context.Context, client *awss3.Client, bucket string) (string, error) {
	return s3manager.GetBucketRegion(ctx, client, bucket)
}

// s3API is the part of the S3 SDK client used here.
type s3API interface {
	HeadBucket(ctx context.Context, params *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error)
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Client is the object client for Amazon S3 and S3-compatible services.
type Client struct {
	objectclient.Base
	bucket  string
	api     s3API
	presign presignAPI
	logger  *zap.Logger
}

// New creates an S3 client. When the SDK client cannot be built the returned
// client reports itself unavailable instead of failing.
//
// With neither Region nor Endpoint configured, New asks S3 for the bucket
// region before returning, so it may make one network call bounded by ctx.
// Availability is still decided without it: a failed lookup keeps the
// default region.
func New(ctx context.Context, cfg objectclient.Config, s3cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{Base: objectclient.NewBase(cfg), bucket: s3cfg.Bucket, logger: logger}

	api, err := newSDKClient(ctx, s3cfg)
	if err != nil {
		logger.Warn("S3 client is not available", zap.Error(err))
		return c
	}
	c.api = api
	c.presign = awss3.NewPresignClient(api)
	return c
}

func newSDKClient(ctx context.Context, s3cfg Config) (*awss3.Client, error) {
	if s3cfg.Bucket == "" {
		return nil, errs.New(errs.KindConfiguration, "s3 bucket is not configured")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if s3cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(s3cfg.Profile))
	}
	if s3cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretKey, s3cfg.SessionToken),
		))
	}

	region := s3cfg.Region
	if region == "" {
		region = defaultRegion
	}
	opts = append(opts, awsconfig.WithRegion(region))

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load aws config")
	}

	s3Opts := func(o *awss3.Options) {
		o.UsePathStyle = s3cfg.UsePathStyle
		if s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
		}
	}
	client := awss3.NewFromConfig(awsCfg, s3Opts)

	// Without an explicit region ask S3 where the bucket lives.
	if s3cfg.Region == "" && s3cfg.Endpoint == "" {
		if bucketRegion, err := lookupBucketRegion(ctx, client, s3cfg.Bucket); err == nil && bucketRegion != "" {
			awsCfg.Region = bucketRegion
			client = awss3.NewFromConfig(awsCfg, s3Opts)
		}
	}

	return client, nil
}

// CheckAvailability reports whether the SDK client was created.
func (c *Client) CheckAvailability() bool {
	return c.api != nil
}

// TestConnection sends a HeadBucket request.
func (c *Client) TestConnection(ctx context.Context) objectclient.ConnectionResult {
	if c.api == nil {
		return objectclient.ConnectionFailed("S3 client is not available")
	}
	if _, err := c.api.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(c.bucket)}); err != nil {
		return objectclient.ConnectionFailed(err.Error())
	}
	return objectclient.ConnectionOK()
}

func (c *Client) TestPermissions(ctx context.Context, testDelete bool) objectclient.PermissionResult {
	if c.api == nil {
		return c.Base.TestPermissions(ctx, testDelete)
	}
	return objectclient.RunPermissionChecks(ctx, c, c.PermissionKey(), testDelete)
}

func (c *Client) SupportsPresignedURLs() bool {
	return c.presign != nil
}

// GeneratePresignedURL signs a GET request for the object. Content-Disposition
// and Content-Type in headers become response overrides.
func (c *Client) GeneratePresignedURL(ctx context.Context, contentHash string, headers map[string]string) (string, error) {
	if c.presign == nil {
		return c.Base.GeneratePresignedURL(ctx, contentHash, headers)
	}

	input := &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.Key(contentHash)),
	}
	disposition, contentType := objectclient.ResponseOverrides(headers)
	if disposition != "" {
		input.ResponseContentDisposition = aws.String(disposition)
	}
	if contentType != "" {
		input.ResponseContentType = aws.String(contentType)
	}

	req, err := c.presign.PresignGetObject(ctx, input, awss3.WithPresignExpires(c.Config().Expiry()))
	if err != nil {
		return "", wrap(err, "failed to presign object")
	}
	return req.URL, nil
}

// ProxyRangeRequest downloads the requested bytes of the file.
func (c *Client) ProxyRangeRequest(ctx context.Context, file objectclient.File, rng objectclient.Range) ([]byte, error) {
	if c.api == nil {
		return nil, objectclient.ErrNotHandled
	}
	if err := rng.Validate(file.Size); err != nil {
		return nil, err
	}

	out, err := c.api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.Key(file.ContentHash)),
		Range:  aws.String(rng.Header()),
	})
	if err != nil {
		return nil, wrap(err, "failed to get object range")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, wrap(err, "failed to read object range")
	}
	return data, nil
}

func (c *Client) TestRangeRequest(ctx context.Context) bool {
	if c.api == nil {
		return false
	}
	return objectclient.ProbeRange(ctx, c, c)
}

// PutObject stores body under key.
func (c *Client) PutObject(ctx context.Context, key string, body []byte) error {
	if c.api == nil {
		return errUnavailable
	}
	if err := objectclient.CheckUploadSize(c, int64(len(body))); err != nil {
		return err
	}
	_, err := c.api.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	})
	return wrap(err, "failed to put object")
}

// GetObject reads the object stored under key.
func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	if c.api == nil {
		return nil, errUnavailable
	}
	out, err := c.api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrap(err, "failed to get object")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	return data, wrap(err, "failed to read object")
}

// DeleteObject removes the object stored under key.
func (c *Client) DeleteObject(ctx context.Context, key string) error {
	if c.api == nil {
		return errUnavailable
	}
	_, err := c.api.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	return wrap(err, "failed to delete object")
}

var (
	_ objectclient.ObjectClient = (*Client)(nil)
	_ objectclient.Prober       = (*Client)(nil)
)
