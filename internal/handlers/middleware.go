package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/domain"
)

type contextKey string

const (
	ContextUserID contextKey = "userId"
	ContextRole   contextKey = "role"
	ContextName   contextKey = "name"
)

type MiddlewareProvider struct {
	jwtProvider primary.JWTService
}

func NewMiddlewareProvider(jwtProvider primary.JWTService) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtProvider: jwtProvider,
	}
}

// JWTMiddleware verifies the bearer token and puts the caller's identity
// into the request context
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		payload, err := m.jwtProvider.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextUserID, payload.UserID)
		ctx = context.WithValue(ctx, ContextRole, payload.Role)
		ctx = context.WithValue(ctx, ContextName, payload.Name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext extracts the authenticated user's ID
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(ContextUserID).(string)
	return userID
}

// RoleFromContext extracts the authenticated user's role
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(ContextRole).(string)
	return role
}

// IsAdmin reports whether the authenticated caller has the admin role
func IsAdmin(ctx context.Context) bool {
	return RoleFromContext(ctx) == domain.RoleAdmin
}
