package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vaultpass/passcheck-go/internal/crypto"
)

type contextKey string

const clientKey contextKey = "client"

// authRealm is advertised in WWW-Authenticate challenges.
const authRealm = "passcheck-api"

var (
	ErrMissingAPIToken   = errors.New("API token required")
	ErrMalformedAPIToken = errors.New("authorization header must be \"Bearer <api token>\"")
)

// ClientAuth returns middleware that admits only callers presenting an API token issued
// by `passcheck token` with the same secret. The client name from the token is stored in
// the request context for per-client rate limiting.
func ClientAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				challenge(w, "invalid_request", err.Error())
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				challenge(w, "invalid_token", "API token is invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), clientKey, claims.Client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingAPIToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMalformedAPIToken
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedAPIToken
	}
	return token, nil
}

// challenge rejects the request with 401 and a Bearer challenge naming the failure.
func challenge(w http.ResponseWriter, code, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="`+authRealm+`", error="`+code+`"`)
	writeJSONError(w, http.StatusUnauthorized, msg)
}

// ClientFromContext returns the API client name set by ClientAuth.
func ClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(clientKey).(string)
	return client, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
