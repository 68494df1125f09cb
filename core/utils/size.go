package utils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-viper/mapstructure/v2"
)

// ByteSize is a size in bytes that can be written as "5GiB" or "100 MB" in
// configuration. Zero means "unset".
type ByteSize int64

// ParseByteSize parses a plain integer or a human readable size.
func ParseByteSize(s string) (ByteSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative size %q", s)
		}
		return ByteSize(n), nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("size %q exceeds %d bytes", s, int64(math.MaxInt64))
	}
	return ByteSize(n), nil
}

// Bytes returns the size as int64.
func (b ByteSize) Bytes() int64 {
	return int64(b)
}

func (b ByteSize) String() string {
	if b <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(b))
}

// ByteSizeHookFunc is a mapstructure decode hook converting strings into ByteSize.
func ByteSizeHookFunc() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(ByteSize(0))
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != target || f.Kind() != reflect.String {
			return data, nil
		}
		return ParseByteSize(data.(string))
	}
}
