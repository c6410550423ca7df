package storefront

import (
	"net/http"
)

// Cookie names. The session cookie scopes the anonymous cart; the auth
// cookie carries the login token. They are separate so a guest cart
// survives logging in and out.
const (
	SessionCookie = "esen_session"
	AuthCookie    = "esen_auth"
)

const sessionMaxAge = 30 * 24 * 60 * 60

// getCookie retrieves a cookie value, empty string when absent.
func getCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// GetSessionID retrieves the cart session ID from the request.
func GetSessionID(r *http.Request) string {
	return getCookie(r, SessionCookie)
}

// GetAuthToken retrieves the login token from the request.
func GetAuthToken(r *http.Request) string {
	return getCookie(r, AuthCookie)
}

// SetSessionCookie issues the cart session cookie.
func SetSessionCookie(w http.ResponseWriter, sessionID string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetAuthCookie issues the login token cookie.
func SetAuthCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie removes the login token cookie.
func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
