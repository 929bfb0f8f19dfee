package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, "Admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "User")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	_, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)

	// signed with a different key
	other := New("other", time.Minute)
	token, err := other.Generate(ctx, 1, "User")
	require.NoError(t, err)
	_, err = j.GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	j := New("secret", time.Minute)

	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: 1, Role: "Admin"})
	s, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), s)
	assert.Error(t, err)
}

func TestJWT_MissingUserID(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 0, "User")
	require.NoError(t, err)

	_, err = j.GetClaims(ctx, token)
	assert.EqualError(t, err, "user_id not found in token")
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc", "abc", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"missing", "", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"no token", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ClaimsFromContext(ctx))

	claims := &Claims{UserID: 3, Role: "User"}
	assert.Same(t, claims, ClaimsFromContext(WithClaims(ctx, claims)))
}
