package logging

import (
	"net/url"
	"strings"
)

const redactedPlaceholder = "[REDACTED]"

// Field names whose values must never be logged. Matching is case-insensitive
// and ignores separators, so "apiKey", "api_key" and "Api-Key" all match.
var sensitiveFields = map[string]struct{}{
	"password":      {},
	"token":         {},
	"accesstoken":   {},
	"refreshtoken":  {},
	"authorization": {},
	"pin":           {},
	"securitycode":  {},
	"cvv":           {},
	"apikey":        {},
	"secret":        {},
}

func isSensitive(key string) bool {
	normalized := strings.ToLower(key)
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)
	_, ok := sensitiveFields[normalized]
	return ok
}

// Redact returns a copy of v with every value under a sensitive key replaced.
// It walks the restricted value model of decoded JSON: maps, lists and
// scalars. Inputs are never mutated.
func Redact(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if isSensitive(k) {
				out[k] = redactedPlaceholder
				continue
			}
			out[k] = Redact(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Redact(item)
		}
		return out
	default:
		return v
	}
}

// RedactValues converts URL query or form values into a redacted map.
func RedactValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		if isSensitive(k) {
			out[k] = redactedPlaceholder
			continue
		}
		items := make([]any, len(vs))
		for i, v := range vs {
			items[i] = v
		}
		out[k] = items
	}
	return out
}
