package config_test

import (
	"testing"
	"time"

	"newswire/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv("NEWSWIRE_TEST_STR", "value")
		if got := config.GetEnvString("NEWSWIRE_TEST_STR", "fallback"); got != "value" {
			t.Errorf("got %q, want %q", got, "value")
		}
	})

	t.Run("unset returns default", func(t *testing.T) {
		if got := config.GetEnvString("NEWSWIRE_TEST_UNSET", "fallback"); got != "fallback" {
			t.Errorf("got %q, want %q", got, "fallback")
		}
	})
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "42", want: 42},
		{name: "negative", value: "-3", want: -3},
		{name: "garbage falls back", value: "abc", want: 7},
		{name: "empty falls back", value: "", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("NEWSWIRE_TEST_INT", tt.value)
			}
			if got := config.GetEnvInt("NEWSWIRE_TEST_INT", 7); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "1", want: true},
		{value: "true", want: true},
		{value: "True", want: true},
		{value: "0", want: false},
		{value: "FALSE", want: false},
		{value: "maybe", want: true}, // invalid -> default
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("NEWSWIRE_TEST_BOOL", tt.value)
			if got := config.GetEnvBool("NEWSWIRE_TEST_BOOL", true); got != tt.want {
				t.Errorf("value %q: got %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("NEWSWIRE_TEST_DUR", "90s")
		if got := config.GetEnvDuration("NEWSWIRE_TEST_DUR", time.Minute); got != 90*time.Second {
			t.Errorf("got %v, want 90s", got)
		}
	})

	t.Run("invalid falls back", func(t *testing.T) {
		t.Setenv("NEWSWIRE_TEST_DUR", "soon")
		if got := config.GetEnvDuration("NEWSWIRE_TEST_DUR", time.Minute); got != time.Minute {
			t.Errorf("got %v, want 1m", got)
		}
	})
}
