package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-api/internal/platform/logging"
)

// RedactHeaders converts request headers into slog attributes for the
// debug-level request log. Values of headers named in
// [logging.SensitiveHeaders] are replaced with "[REDACTED]"; everything else
// passes through unchanged, with multi-value headers joined by a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}
