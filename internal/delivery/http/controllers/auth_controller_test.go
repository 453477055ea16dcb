package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssuer struct {
	token string
	err   error

	gotUID       string
	gotAnonymous bool
}

func (f *fakeIssuer) Issue(uid string, anonymous bool, expiry time.Duration) (string, error) {
	f.gotUID = uid
	f.gotAnonymous = anonymous
	return f.token, f.err
}

func TestAuthController_GuestSession(t *testing.T) {
	t.Run("issues an anonymous token", func(t *testing.T) {
		issuer := &fakeIssuer{token: "signed-token"}
		ctrl := NewAuthController(testLogger(), issuer)

		req := httptest.NewRequest(http.MethodPost, "/auth/guest", nil)
		rec := httptest.NewRecorder()
		ctrl.GuestSession(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, issuer.gotAnonymous)
		assert.True(t, strings.HasPrefix(issuer.gotUID, "guest-"))

		var resp struct {
			Data GuestSessionResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Data.Token)
		assert.Equal(t, issuer.gotUID, resp.Data.UID)
	})

	t.Run("signing failure", func(t *testing.T) {
		issuer := &fakeIssuer{err: errors.New("no key")}
		ctrl := NewAuthController(testLogger(), issuer)

		req := httptest.NewRequest(http.MethodPost, "/auth/guest", nil)
		rec := httptest.NewRecorder()
		ctrl.GuestSession(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal_error")
	})
}

func TestGenerateGuestUID(t *testing.T) {
	seen := make(map[string]bool)
	for range 10 {
		uid, err := generateGuestUID()
		require.NoError(t, err)
		assert.Len(t, uid, guestUIDLength)
		assert.False(t, seen[uid], "uids should not repeat")
		seen[uid] = true
	}
}
