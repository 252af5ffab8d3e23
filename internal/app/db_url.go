package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL adds sslmode to the connection string when it does not set
// one. lib/pq defaults to sslmode=require, which local Postgres rejects.
func normalizeDBURL(raw, sslMode string) string {
	sslMode = strings.TrimSpace(sslMode)
	if sslMode == "" {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && (parsed.Scheme == "postgres" || parsed.Scheme == "postgresql") {
		query := parsed.Query()
		if query.Get("sslmode") == "" {
			query.Set("sslmode", sslMode)
			parsed.RawQuery = query.Encode()
		}
		return parsed.String()
	}

	for _, token := range strings.Fields(trimmed) {
		if strings.HasPrefix(token, "sslmode=") {
			return raw
		}
	}
	if trimmed == "" {
		return raw
	}

	return trimmed + " sslmode=" + sslMode
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
