package app

import (
	"net/url"
	"strings"
)

// dbNameFromURL accepts both postgres:// URLs and key=value DSNs.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	return dsnValue(trimmed, "dbname")
}

// redactDBURL hides the password so the DSN can appear in logs and errors.
func redactDBURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		return parsed.Redacted()
	}

	fields := strings.Fields(trimmed)
	for i, field := range fields {
		if strings.HasPrefix(field, "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

func dsnValue(dsn, name string) string {
	prefix := name + "="
	for _, token := range strings.Fields(dsn) {
		if value, ok := strings.CutPrefix(token, prefix); ok {
			return strings.Trim(strings.TrimSpace(value), `"'`)
		}
	}
	return ""
}
