// Package rbac checks bearer tokens and maps roles to the operations they may perform.
package rbac

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleReader Role = "reader"
)

// Op is the kind of access a route needs.
type Op int

const (
	OpRead Op = iota
	OpCreate
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

var (
	ErrUnauthorized apperrors.Error = apperrors.ErrUnauthorized.New("missing or invalid bearer token")
	ErrForbidden    apperrors.Error = apperrors.ErrForbidden.New("operation not permitted for role")
)

var grants = map[Role][]Op{
	RoleAdmin:  {OpRead, OpCreate, OpUpdate, OpDelete},
	RoleEditor: {OpRead, OpCreate, OpUpdate, OpDelete},
	RoleReader: {OpRead},
}

// ParseRole maps a role name to its Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := grants[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Claims is the token payload.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Allows reports whether the role may perform op.
func (c *Claims) Allows(op Op) bool {
	for _, g := range grants[c.Role] {
		if g == op {
			return true
		}
	}
	return false
}

// Authorizer verifies HS256 tokens signed with a shared secret.
type Authorizer struct {
	secret []byte
}

func NewAuthorizer(secret string) *Authorizer {
	return &Authorizer{secret: []byte(secret)}
}

// Enabled is false when no secret is configured. Every request passes in that case.
func (a *Authorizer) Enabled() bool {
	return a != nil && len(a.secret) > 0
}

// Issue signs a token for subject with the given role.
func (a *Authorizer) Issue(subject string, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses an Authorization header value and returns the token claims.
func (a *Authorizer) Verify(header string) (*Claims, apperrors.Error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ErrUnauthorized
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized.Err(err)
	}
	if _, known := grants[claims.Role]; !known {
		return nil, ErrUnauthorized.Msg(fmt.Sprintf("unknown role %q", claims.Role))
	}
	return claims, nil
}

// Authorize checks header for op.
func (a *Authorizer) Authorize(header string, op Op) (*Claims, apperrors.Error) {
	claims, err := a.Verify(header)
	if err != nil {
		return nil, err
	}
	if !claims.Allows(op) {
		return claims, ErrForbidden.Msg(fmt.Sprintf("role %s cannot %s", claims.Role, op))
	}
	return claims, nil
}
