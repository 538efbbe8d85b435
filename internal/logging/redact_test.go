package logging

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	t.Run("redacts sensitive keys at any depth", func(t *testing.T) {
		input := map[string]any{
			"email":    "admin@example.com",
			"password": "hunter2",
			"session": map[string]any{
				"token":   "abc.def.ghi",
				"expires": "2026-01-01",
			},
			"devices": []any{
				map[string]any{"name": "Terminal 01", "apiKey": "k-123"},
			},
		}

		out, ok := Redact(input).(map[string]any)
		require.True(t, ok)

		assert.Equal(t, "admin@example.com", out["email"])
		assert.Equal(t, "[REDACTED]", out["password"])

		session := out["session"].(map[string]any)
		assert.Equal(t, "[REDACTED]", session["token"])
		assert.Equal(t, "2026-01-01", session["expires"])

		device := out["devices"].([]any)[0].(map[string]any)
		assert.Equal(t, "Terminal 01", device["name"])
		assert.Equal(t, "[REDACTED]", device["apiKey"])
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		input := map[string]any{
			"password": "hunter2",
			"nested":   map[string]any{"secret": "s3cr3t"},
		}

		Redact(input)

		assert.Equal(t, "hunter2", input["password"])
		assert.Equal(t, "s3cr3t", input["nested"].(map[string]any)["secret"])
	})

	t.Run("key matching ignores case and separators", func(t *testing.T) {
		input := map[string]any{
			"PASSWORD":      "a",
			"api_key":       "b",
			"Refresh-Token": "c",
			"security code": "d",
			"username":      "kept",
		}

		out := Redact(input).(map[string]any)

		assert.Equal(t, "[REDACTED]", out["PASSWORD"])
		assert.Equal(t, "[REDACTED]", out["api_key"])
		assert.Equal(t, "[REDACTED]", out["Refresh-Token"])
		assert.Equal(t, "[REDACTED]", out["security code"])
		assert.Equal(t, "kept", out["username"])
	})

	t.Run("passes scalars through", func(t *testing.T) {
		assert.Equal(t, 42, Redact(42))
		assert.Equal(t, "plain", Redact("plain"))
		assert.Nil(t, Redact(nil))
	})
}

func TestRedactValues(t *testing.T) {
	values := url.Values{
		"search": []string{"budi"},
		"token":  []string{"abc", "def"},
	}

	out := RedactValues(values)

	assert.Equal(t, []any{"budi"}, out["search"])
	assert.Equal(t, "[REDACTED]", out["token"])
}
