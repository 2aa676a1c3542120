package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/pkg/ctxutil"
)

type requestMetaKey struct{}

// requestMeta carries fields discovered deeper in the chain back up to the
// logger. Auth runs inside Logger, so the identity it resolves is not
// visible on the logger's own request context.
type requestMeta struct {
	userID uuid.UUID
}

func metaFromCtx(ctx context.Context) *requestMeta {
	m, _ := ctx.Value(requestMetaKey{}).(*requestMeta)
	return m
}

// annotateUser records the caller for the request log line, if Logger is
// installed further out.
func annotateUser(ctx context.Context, id uuid.UUID) {
	if m := metaFromCtx(ctx); m != nil {
		m.userID = id
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_id).
// Request bodies are never logged.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			meta := &requestMeta{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestMetaKey{}, meta)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			userID := meta.userID
			if userID == uuid.Nil {
				userID, _ = ctxutil.UserIDFromCtx(r.Context())
			}
			if userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
