package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"parses valid integer", "100", 100},
		{"parses negative integers", "-10", -10},
		{"parses zero", "0", 0},
		{"returns default for invalid integer", "not-a-number", 42},
		{"returns default for float values", "42.5", 42},
		{"returns default for empty string", "", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"parses minutes", "5m", 5 * time.Minute},
		{"parses seconds", "30s", 30 * time.Second},
		{"parses complex duration", "1h30m", 90 * time.Minute},
		{"parses milliseconds", "250ms", 250 * time.Millisecond},
		{"returns default for invalid duration", "soon", time.Minute},
		{"returns default for plain numbers without unit", "30", time.Minute},
		{"returns default for empty string", "", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		})
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT_VAR", "0.05")
	assert.InDelta(t, 0.05, getEnvAsFloat("TEST_FLOAT_VAR", 0.1), 1e-9)

	t.Setenv("TEST_FLOAT_VAR", "ten percent")
	assert.InDelta(t, 0.1, getEnvAsFloat("TEST_FLOAT_VAR", 0.1), 1e-9)
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", "")
	assert.Nil(t, getEnvAsList("TEST_LIST_VAR"))

	t.Setenv("TEST_LIST_VAR", " a ,b,, c ")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsList("TEST_LIST_VAR"))
}
