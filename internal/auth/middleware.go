// ABOUTME: Stub bearer-token middleware for the mock backend.
// ABOUTME: Extracts an operator identity from the Authorization header into the context.

package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const operatorContextKey contextKey = "operator"

// DefaultOperator is the identity used when no token is presented.
const DefaultOperator = "admin"

// Middleware resolves the operator identity for each request. The mock backend
// does not validate tokens; any bearer token resolves to the same shared
// identity so data persists across clients, while "user:<name>" tokens let
// tests pin an explicit operator.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		op := extractOperator(r.Header.Get("Authorization"))
		ctx := context.WithValue(r.Context(), operatorContextKey, op)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OperatorFromContext returns the resolved operator identity.
func OperatorFromContext(ctx context.Context) string {
	op, ok := ctx.Value(operatorContextKey).(string)
	if !ok || op == "" {
		return DefaultOperator
	}
	return op
}

func extractOperator(header string) string {
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return DefaultOperator
	}
	if name, ok := strings.CutPrefix(token, "user:"); ok && name != "" {
		return name
	}
	return DefaultOperator
}
