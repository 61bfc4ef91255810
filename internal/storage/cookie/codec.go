package cookie

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Encode serializes value into a cookie-safe string: JSON, then URL-escaped.
func Encode(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cookie value: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// Decode parses a cookie value produced by Encode into dst.
// Only values carrying a percent escape are unescaped, so '+' in a raw
// token survives. When dst is a *string and the value is not JSON, raw is
// assigned unchanged.
func Decode(raw string, dst any) error {
	value := raw
	if strings.Contains(raw, "%") {
		if unescaped, err := url.QueryUnescape(raw); err == nil {
			value = unescaped
		}
	}

	if err := json.Unmarshal([]byte(value), dst); err != nil {
		if s, ok := dst.(*string); ok {
			*s = raw
			return nil
		}
		return fmt.Errorf("failed to unmarshal cookie value: %w", err)
	}

	return nil
}
