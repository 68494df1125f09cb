package utils_test

import (
	"reflect"
	"testing"

	"objectfs/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want bool
	}{
		{"BoolTrue", true, true},
		{"BoolFalse", false, false},
		{"IntOne", 1, true},
		{"IntZero", 0, false},
		{"StringTrue", "true", true},
		{"StringUpper", "TRUE", true},
		{"StringOne", "1", true},
		{"StringYes", "yes", true},
		{"StringFalse", "false", false},
		{"Bytes", []byte("on"), true},
		{"Nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToBool(tt.val))
		})
	}
}

func TestToBoolDefault(t *testing.T) {
	assert.True(t, utils.ToBoolDefault("", true))
	assert.False(t, utils.ToBoolDefault(" ", false))
	assert.False(t, utils.ToBoolDefault("false", true))
	assert.True(t, utils.ToBoolDefault("1", false))
	assert.True(t, utils.ToBoolDefault("On", false))
}

func TestToInt64(t *testing.T) {
	n, err := utils.ToInt64(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = utils.ToInt64(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = utils.ToInt64("abc")
	assert.Error(t, err)

	_, err = utils.ToInt64(1.5)
	assert.Error(t, err)
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		in      string
		want    utils.ByteSize
		wantErr bool
	}{
		{"", 0, false},
		{"1024", 1024, false},
		{"1KiB", 1024, false},
		{"1 kB", 1000, false},
		{"5GiB", 5 * 1024 * 1024 * 1024, false},
		{"-1", 0, true},
		{"lots", 0, true},
		{"8EiB", 0, true},
		{"9EiB", 0, true},
		{"7EiB", 7 << 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := utils.ParseByteSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByteSize_String(t *testing.T) {
	assert.Equal(t, "0 B", utils.ByteSize(0).String())
	assert.Equal(t, "1.0 KiB", utils.ByteSize(1024).String())
	assert.Equal(t, int64(10), utils.ByteSize(10).Bytes())
}

func TestByteSizeHookFunc(t *testing.T) {
	hook := utils.ByteSizeHookFunc()

	out, err := hook(reflect.TypeOf(""), reflect.TypeOf(utils.ByteSize(0)), "2KiB")
	require.NoError(t, err)
	assert.Equal(t, utils.ByteSize(2048), out)

	// Other targets pass through untouched.
	out, err = hook(reflect.TypeOf(""), reflect.TypeOf(""), "2KiB")
	require.NoError(t, err)
	assert.Equal(t, "2KiB", out)
}
