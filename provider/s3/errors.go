package s3

import (
	"net/http"

	"objectfs/core/errs"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/pkg/errors"
)

// classify maps an SDK error to an errs kind.
func classify(err error) errs.Kind {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "Forbidden", "AllAccessDisabled", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return errs.KindPermissionDenied
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return errs.KindNotFound
		case "InvalidRange":
			return errs.KindInvalidInput
		}
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusForbidden:
			return errs.KindPermissionDenied
		case http.StatusNotFound:
			return errs.KindNotFound
		case http.StatusRequestedRangeNotSatisfiable:
			return errs.KindInvalidInput
		}
	}

	return errs.KindConnectionFailed
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errs.Wrap(classify(err), msg, errors.WithStack(err))
}
