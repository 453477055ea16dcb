package controllers

import (
	"crypto/rand"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"eventgram/internal/delivery/http/helpers"
	"eventgram/internal/domain"
)

// guestTokenTTL bounds how long a guest identity stays valid.
const guestTokenTTL = 24 * time.Hour

const guestUIDLength = 16

var guestUIDAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// GuestSessionResponse is the payload for POST /auth/guest.
type GuestSessionResponse struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
}

// GuestSessionSuccessResponse is the success response envelope for POST
// /auth/guest.
type GuestSessionSuccessResponse struct {
	Data  GuestSessionResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type AuthController struct {
	Logger *slog.Logger
	Issuer domain.TokenIssuer
}

func NewAuthController(logger *slog.Logger, issuer domain.TokenIssuer) *AuthController {
	return &AuthController{
		Logger: logger,
		Issuer: issuer,
	}
}

// GuestSession godoc
// @Summary Issue an anonymous identity token
// @Description Mints a fresh anonymous identity so a caller without an account can comment. Anonymous identities cannot create or own events. The real sign-in flow is handled by the external identity provider.
// @Tags auth
// @Produce json
// @Success 201 {object} controllers.GuestSessionSuccessResponse "data contains the token and its uid"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/guest [post]
func (c *AuthController) GuestSession(w http.ResponseWriter, r *http.Request) {
	uid, err := generateGuestUID()
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "guest uid generation failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not create guest session")
		return
	}
	uid = "guest-" + uid
	token, err := c.Issuer.Issue(uid, true, guestTokenTTL)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "guest token issue failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not create guest session")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, GuestSessionResponse{Token: token, UID: uid})
}

func generateGuestUID() (string, error) {
	b := make([]rune, guestUIDLength)
	max := big.NewInt(int64(len(guestUIDAlphabet)))
	for i := 0; i < guestUIDLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = guestUIDAlphabet[n.Int64()]
	}
	return string(b), nil
}
