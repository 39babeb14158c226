package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/postplus/postplus_api/internal/domain"
)

type companyIDKey struct{}

type TokenVerifier interface {
	Verify(raw string) (string, error)
}

type RequestObserver interface {
	ObserveRequest(method, route, status string, seconds float64)
}

// Authenticate rejects requests without a valid bearer token and stores the
// id of the authenticated company in the request context.
func Authenticate(log *slog.Logger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeError(w, r, log, domain.NewError(domain.ErrUnauthorized, "missing bearer token"))
				return
			}

			companyID, err := verifier.Verify(raw)
			if err != nil {
				writeError(w, r, log, err)
				return
			}

			ctx := context.WithValue(r.Context(), companyIDKey{}, companyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func CompanyIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(companyIDKey{}).(string)
	return id, ok && id != ""
}

func authenticatedCompany(r *http.Request) (string, error) {
	id, ok := CompanyIDFromContext(r.Context())
	if !ok {
		return "", domain.NewError(domain.ErrUnauthorized, "unauthenticated")
	}

	return id, nil
}

// Instrument records the duration of every request labeled with its route pattern.
func Instrument(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			observer.ObserveRequest(r.Method, route, strconv.Itoa(status), time.Since(start).Seconds())
		})
	}
}
