package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/pkg/httpx"
	"github.com/aussiebroadwan/vocab/pkg/slogx"
	"github.com/aussiebroadwan/vocab/pkg/vocabsdk"
)

type AuthHandler struct {
	Sessions     *service.SessionService
	CookieSecure bool
}

// Register creates an account.
//
//	@Summary		Register
//	@Description	Creates a user with the default role. Emails are matched case-insensitively.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vocabsdk.CredentialsRequest	true	"email and password"
//	@Success		201		{object}	vocabsdk.RegisterResponse
//	@Failure		400		{object}	vocabsdk.ErrorResponse	"Missing email or password"
//	@Failure		409		{object}	vocabsdk.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	vocabsdk.ErrorResponse
//	@Router			/auth/register [post].
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req vocabsdk.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, err := h.Sessions.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, vocabsdk.RegisterResponse{UserID: userID})
}

// Login exchanges credentials for a token pair.
//
//	@Summary		Login
//	@Description	Returns an access token and sets the refreshToken cookie. Every login opens an additional session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vocabsdk.CredentialsRequest	true	"email and password"
//	@Success		200		{object}	vocabsdk.TokenResponse
//	@Header			200		{string}	Set-Cookie	"refreshToken; HttpOnly; Secure; SameSite=Strict"
//	@Failure		400		{object}	vocabsdk.ErrorResponse
//	@Failure		401		{object}	vocabsdk.ErrorResponse	"Invalid email or password"
//	@Failure		500		{object}	vocabsdk.ErrorResponse
//	@Router			/auth/login [post].
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req vocabsdk.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pair, err := h.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setRefreshCookie(w, pair.RefreshToken, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, vocabsdk.TokenResponse{AccessToken: pair.AccessToken})
}

// Refresh rotates the refresh token in the cookie.
//
//	@Summary		Refresh
//	@Description	Consumes the refreshToken cookie and issues a new access token and refresh token. A refresh token works once.
//	@Tags			Auth
//	@Produce		json
//	@Success		200				{object}	vocabsdk.TokenResponse
//	@Failure		401				{object}	vocabsdk.ErrorResponse	"No refresh token cookie"
//	@Failure		403				{object}	vocabsdk.ErrorResponse	"Refresh token invalid, expired or already used"
//	@Failure		500				{object}	vocabsdk.ErrorResponse
//	@Router			/auth/refresh [post].
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	pair, err := h.Sessions.Refresh(r.Context(), refreshCookieValue(r))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			slogx.FromContext(r.Context()).Warn("refresh rejected", "err", err)
		}
		writeServiceError(w, r, err)
		return
	}

	setRefreshCookie(w, pair.RefreshToken, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, vocabsdk.TokenResponse{AccessToken: pair.AccessToken})
}

// Logout drops the session of the presented refresh token.
//
//	@Summary		Logout
//	@Description	Removes the refresh token in the cookie from its owner's sessions and clears the cookie. Always succeeds.
//	@Tags			Auth
//	@Success		204
//	@Router			/auth/logout [post].
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(r.Context(), refreshCookieValue(r)); err != nil {
		slogx.FromContext(r.Context()).Warn("logout failed", "err", err)
	}

	clearRefreshCookie(w, h.CookieSecure)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// ProtectedHandler echoes the caller decoded by the access guard.
//
//	@Summary		Protected resource
//	@Description	Returns the identity carried by the access token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	vocabsdk.ProtectedResponse
//	@Failure		401	{object}	vocabsdk.ErrorResponse	"Missing bearer token"
//	@Failure		403	{object}	vocabsdk.ErrorResponse	"Invalid or expired access token"
//	@Router			/protected [get].
func ProtectedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		vocabsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vocabsdk.ProtectedResponse{
		Message: "access granted",
		User:    vocabsdk.Identity{UserID: id.UserID, Role: id.Role},
	})
}

func refreshCookieValue(r *http.Request) string {
	ck, err := r.Cookie(vocabsdk.RefreshCookieName)
	if err != nil {
		return ""
	}
	return ck.Value
}

// setRefreshCookie writes a session cookie; server-side validity is the
// token's own expiry.
func setRefreshCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     vocabsdk.RefreshCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearRefreshCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     vocabsdk.RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
