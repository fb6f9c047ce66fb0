package web

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
)

const sessionName = "fermento_admin"

// SessionManager issues and validates the admin session cookie.
type SessionManager struct{ sc *securecookie.SecureCookie }

func NewSessionManager(hashKey, blockKey []byte) *SessionManager {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int((24 * time.Hour).Seconds()))
	return &SessionManager{sc: sc}
}

func (s *SessionManager) SetAdmin(w http.ResponseWriter, r *http.Request, user string) error {
	encoded, err := s.sc.Encode(sessionName, map[string]string{"user": user})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})
	return nil
}

func (s *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (s *SessionManager) AdminUser(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionName)
	if err != nil {
		return "", false
	}
	value := map[string]string{}
	if err := s.sc.Decode(sessionName, c.Value, &value); err != nil {
		return "", false
	}
	if value["user"] == "" {
		return "", false
	}
	return value["user"], true
}

// CheckPassword compares a bcrypt hash against a candidate password.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// HashPassword is used by the CLI to mint ADMIN_PASSWORD_HASH values.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// RequireAdmin redirects unauthenticated requests to the login form.
func (s *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.AdminUser(r); !ok {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
