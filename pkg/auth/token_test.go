package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Minute, time.Hour)

	pair, err := mgr.IssuePair(42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := mgr.VerifyAccess(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	claims, err = mgr.VerifyRefresh(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestTokenTypeMismatch(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Minute, time.Hour)

	pair, err := mgr.IssuePair(1, "bob")
	assert.NoError(t, err)

	_, err = mgr.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrWrongType)

	_, err = mgr.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrWrongType)
}

func TestTokenWrongSecret(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Minute, time.Hour)
	other := auth.NewManager("another-secret", time.Minute, time.Hour)

	pair, err := mgr.IssuePair(1, "bob")
	assert.NoError(t, err)

	_, err = other.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Minute, time.Hour)

	_, err := mgr.VerifyAccess("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
