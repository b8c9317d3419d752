package common

import (
	"context"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIdFromContext(ctx))
	assert.Nil(t, ClaimsFromContext(ctx))

	ctx = SetRequestIdInContext(ctx, "req-1")
	ctx = SetClaimsInContext(ctx, &rbac.Claims{Role: rbac.RoleReader})
	assert.Equal(t, "req-1", RequestIdFromContext(ctx))
	assert.Equal(t, rbac.RoleReader, ClaimsFromContext(ctx).Role)
}
