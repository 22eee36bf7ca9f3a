package middleware

import (
	"crypto/subtle"
	"net/http"
)

// PasscodeHeader carries the authorization passcode for destructive
// operations (shift end, full reset).
const PasscodeHeader = "X-Admin-Passcode"

type passcodeMiddleware struct {
	expected string
}

func NewPasscodeMiddleware(expected string) *passcodeMiddleware {
	return &passcodeMiddleware{expected: expected}
}

// Require rejects the request unless the passcode header matches the
// configured value. With no passcode configured, destructive routes are
// disabled outright rather than left open.
func (m *passcodeMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.expected == "" {
			http.Error(w, "destructive operations are not configured", http.StatusForbidden)
			return
		}

		got := r.Header.Get(PasscodeHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.expected)) != 1 {
			http.Error(w, "incorrect passcode", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
