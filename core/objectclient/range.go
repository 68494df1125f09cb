package objectclient

import (
	"fmt"
	"strconv"
	"strings"

	"objectfs/core/errs"
)

// File identifies a stored file by its content hash.
type File struct {
	ContentHash string `json:"content_hash"`
	Size        int64  `json:"size"`
	Filename    string `json:"filename"`
	MimeType    string `json:"mime_type"`
}

// Range is a byte range of a file. From and To are both inclusive, as in an
// HTTP "Range: bytes=From-To" header, and Length equals To-From+1.
type Range struct {
	From   int64 `json:"from"`
	To     int64 `json:"to"`
	Length int64 `json:"length"`
}

// NewRange builds a Range from inclusive offsets.
func NewRange(from, to int64) Range {
	return Range{From: from, To: to, Length: to - from + 1}
}

// Validate checks the offsets against each other and, when size is known
// (greater than zero), against the file size.
func (r Range) Validate(size int64) error {
	if r.From < 0 || r.To < 0 {
		return errs.Newf(errs.KindInvalidInput, "negative range offsets %d-%d", r.From, r.To)
	}
	if r.To < r.From {
		return errs.Newf(errs.KindInvalidInput, "range end %d before start %d", r.To, r.From)
	}
	// length overflows int64 only for 0-MaxInt64
	if r.To-r.From+1 <= 0 {
		return errs.Newf(errs.KindInvalidInput, "range %d-%d is too large", r.From, r.To)
	}
	if r.Length != r.To-r.From+1 {
		return errs.Newf(errs.KindInvalidInput, "range length %d does not match %d-%d", r.Length, r.From, r.To)
	}
	if size > 0 && r.To >= size {
		return errs.Newf(errs.KindInvalidInput, "range end %d beyond file size %d", r.To, size)
	}
	return nil
}

// Header renders the range as an HTTP Range header value.
func (r Range) Header() string {
	return fmt.Sprintf("bytes=%d-%d", r.From, r.To)
}

// ContentRange renders the Content-Range response header for a file of size
// bytes; an unknown size is written as "*".
func (r Range) ContentRange(size int64) string {
	total := "*"
	if size > 0 {
		total = strconv.FormatInt(size, 10)
	}
	return fmt.Sprintf("bytes %d-%d/%s", r.From, r.To, total)
}

// ParseRangeHeader parses a single "bytes=a-b" range. Open-ended ranges
// ("bytes=a-" and "bytes=-n") are resolved against size, which must then be
// known.
func ParseRangeHeader(header string, size int64) (Range, error) {
	set, ok := strings.CutPrefix(strings.TrimSpace(header), "bytes=")
	if !ok || strings.Contains(set, ",") {
		return Range{}, errs.Newf(errs.KindInvalidInput, "unsupported range header %q", header)
	}
	fromStr, toStr, ok := strings.Cut(set, "-")
	if !ok {
		return Range{}, errs.Newf(errs.KindInvalidInput, "malformed range header %q", header)
	}

	var from, to int64
	var err error
	switch {
	case fromStr == "" && toStr == "":
		return Range{}, errs.Newf(errs.KindInvalidInput, "malformed range header %q", header)
	case fromStr == "":
		if size <= 0 {
			return Range{}, errs.New(errs.KindInvalidInput, "suffix range requires a known file size")
		}
		n, err := strconv.ParseInt(toStr, 10, 64)
		if err != nil || n <= 0 {
			return Range{}, errs.Newf(errs.KindInvalidInput, "malformed range header %q", header)
		}
		from = max(size-n, 0)
		to = size - 1
	case toStr == "":
		if size <= 0 {
			return Range{}, errs.New(errs.KindInvalidInput, "open range requires a known file size")
		}
		if from, err = strconv.ParseInt(fromStr, 10, 64); err != nil {
			return Range{}, errs.Newf(errs.KindInvalidInput, "malformed range header %q", header)
		}
		to = size - 1
	default:
		if from, err = strconv.ParseInt(fromStr, 10, 64); err != nil {
			return Range{}, errs.Newf(errs.KindInvalidInput, "malformed range header %q", header)
		}
		if to, err = strconv.ParseInt(toStr, 10, 64); err != nil {
			return Range{}, errs.Newf(errs.KindInvalidInput, "malformed range header %q", header)
		}
		if size > 0 && to >= size {
			to = size - 1
		}
	}

	rng := NewRange(from, to)
	if err := rng.Validate(size); err != nil {
		return Range{}, err
	}
	return rng, nil
}
