package clientcheck

import (
	"context"

	"objectfs/core/diagnostics"
	"objectfs/core/objectclient"
	"objectfs/core/readiness"

	"go.uber.org/zap"
)

// Service runs the object client checks behind the HTTP routes and the CLI.
type Service struct {
	client   objectclient.ObjectClient
	checker  *readiness.Checker
	reporter *diagnostics.Reporter
	logger   *zap.Logger
}

// NewService creates a new client check service.
func NewService(client objectclient.ObjectClient, checker *readiness.Checker, reporter *diagnostics.Reporter, logger *zap.Logger) *Service {
	if checker == nil {
		checker = readiness.NewChecker()
	}
	if reporter == nil {
		reporter = diagnostics.NewReporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, checker: checker, reporter: reporter, logger: logger}
}

// Ready evaluates the readiness of the client.
func (s *Service) Ready(ctx context.Context) readiness.Decision {
	return s.checker.Check(ctx, s.client, s.client.Config())
}

// Diagnose renders the diagnostics report.
func (s *Service) Diagnose(ctx context.Context, testDelete bool) []objectclient.Message {
	return s.reporter.Render(ctx, s.client, testDelete)
}

// DefaultTestDelete is the configured delete flag for diagnostics.
func (s *Service) DefaultTestDelete() bool {
	return s.client.Config().TestDelete
}

// Presign generates a signed download URL for the file.
func (s *Service) Presign(ctx context.Context, contentHash, disposition, contentType string) (string, error) {
	headers := map[string]string{}
	if disposition != "" {
		headers[objectclient.HeaderContentDisposition] = disposition
	}
	if contentType != "" {
		headers[objectclient.HeaderContentType] = contentType
	}
	return s.client.GeneratePresignedURL(ctx, contentHash, headers)
}

// ShouldPresign reports whether a file of the given size is served through a
// signed URL under the configured presign policy.
func (s *Service) ShouldPresign(size int64) bool {
	return s.client.Config().ShouldPresign(s.client, size)
}

// Range parses an HTTP Range header and proxies the range for the file.
// size is the file size, or 0 when unknown.
func (s *Service) Range(ctx context.Context, contentHash, header string, size int64) (objectclient.Range, []byte, error) {
	rng, err := objectclient.ParseRangeHeader(header, size)
	if err != nil {
		return objectclient.Range{}, nil, err
	}
	data, err := s.client.ProxyRangeRequest(ctx, objectclient.File{ContentHash: contentHash, Size: size}, rng)
	if err != nil {
		return rng, nil, err
	}
	return rng, data, nil
}
