package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runToken(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { config.SetConfig(config.Default()) })
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "token"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("OBJECTIFIED_JWT_SECRET", "s3cret")
	token, err := runToken(t, "--role", "editor", "--subject", "ann")
	require.NoError(t, err)

	claims, verr := rbac.NewAuthorizer("s3cret").Verify("Bearer " + token)
	require.Nil(t, verr)
	assert.Equal(t, rbac.RoleEditor, claims.Role)
	assert.Equal(t, "ann", claims.Subject)

	_, err = runToken(t, "--role", "owner")
	assert.ErrorContains(t, err, "unknown role")
}

func TestTokenRequiresSecret(t *testing.T) {
	_, err := runToken(t)
	assert.ErrorContains(t, err, "jwt_secret")
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	setupLogger(config.LogConfig{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	setupLogger(config.LogConfig{Level: "chatty"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
