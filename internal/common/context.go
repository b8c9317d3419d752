// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/rbac"
)

// ctxRequestIdKeyType represents the key type for the request ID in the context.
type ctxRequestIdKeyType string

const ctxRequestIdKey ctxRequestIdKeyType = "ObjectifiedRequestId"

// ctxClaimsKeyType represents the key type for the caller's token claims in the context.
type ctxClaimsKeyType string

const ctxClaimsKey ctxClaimsKeyType = "ObjectifiedClaims"

// SetRequestIdInContext sets the request ID in the provided context.
func SetRequestIdInContext(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

// RequestIdFromContext retrieves the request ID from the provided context.
func RequestIdFromContext(ctx context.Context) string {
	if requestId, ok := ctx.Value(ctxRequestIdKey).(string); ok {
		return requestId
	}
	return ""
}

// SetClaimsInContext sets the verified token claims in the provided context.
func SetClaimsInContext(ctx context.Context, claims *rbac.Claims) context.Context {
	return context.WithValue(ctx, ctxClaimsKey, claims)
}

// ClaimsFromContext retrieves the token claims, or nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *rbac.Claims {
	if claims, ok := ctx.Value(ctxClaimsKey).(*rbac.Claims); ok {
		return claims
	}
	return nil
}
