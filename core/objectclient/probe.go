package objectclient

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"

	"objectfs/core/errs"
)

// Prober is the minimal object I/O a provider exposes so the shared
// permission and range probes can run against it. Keys are full object keys.
// Implementations map SDK errors to errs kinds; access denied must be
// reported as errs.KindPermissionDenied.
type Prober interface {
	PutObject(ctx context.Context, key string, body []byte) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	DeleteObject(ctx context.Context, key string) error
}

var permissionProbeBody = []byte("test content")

// RunPermissionChecks writes, reads back and optionally deletes the probe
// object under key. A successful delete is a failure: the store must not
// allow removing objects. With testDelete the checks are a superset of
// those run without it.
func RunPermissionChecks(ctx context.Context, p Prober, key string, testDelete bool) PermissionResult {
	result := PermissionResult{Success: true}

	if err := p.PutObject(ctx, key, permissionProbeBody); err != nil {
		result.Fail(MsgWriteFailed)
	}

	if _, err := p.GetObject(ctx, key); err != nil {
		result.Fail(MsgReadFailed)
	}

	if testDelete {
		err := p.DeleteObject(ctx, key)
		switch {
		case err == nil:
			result.Fail(MsgDeleteGranted)
		case errs.IsPermissionDenied(err):
			// expected
		default:
			result.Fail(MsgDeleteCheckFailed)
		}
	}

	if result.Success {
		result.Add(MsgPermissionsPassed, SeveritySuccess)
	}
	return result
}

var rangeProbeBody = []byte("objectfs range request probe")

// ProbeRange stores a small object for client through p and checks that
// client.ProxyRangeRequest returns the expected slice of it.
func ProbeRange(ctx context.Context, p Prober, client ObjectClient) bool {
	sum := sha1.Sum(rangeProbeBody)
	hash := hex.EncodeToString(sum[:])

	if err := p.PutObject(ctx, KeyFromHash(client.Config().KeyPrefix, hash), rangeProbeBody); err != nil {
		return false
	}

	rng := NewRange(0, 6)
	file := File{ContentHash: hash, Size: int64(len(rangeProbeBody))}
	data, err := client.ProxyRangeRequest(ctx, file, rng)
	if err != nil {
		return false
	}
	return bytes.Equal(data, rangeProbeBody[rng.From:rng.To+1])
}

// CheckUploadSize fails with an invalid input error when size exceeds the
// client's non-zero upload ceiling.
func CheckUploadSize(client ObjectClient, size int64) error {
	limit := client.MaxUploadSize()
	if limit > 0 && size > limit {
		return errs.Newf(errs.KindInvalidInput, "file of %d bytes exceeds the upload limit of %d bytes", size, limit)
	}
	return nil
}
