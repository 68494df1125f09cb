package server_test

import (
	"testing"

	"objectfs/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Plain", "9000", ":9000"},
		{"WithColon", ":9000", ":9000"},
		{"Empty", "", ":8080"},
		{"Spaces", " 8081 ", ":8081"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_AuthEnabled(t *testing.T) {
	assert.False(t, server.Config{}.AuthEnabled())
	assert.True(t, server.Config{ApiKey: "secret"}.AuthEnabled())
}
