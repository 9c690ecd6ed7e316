package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/errors"
)

// AdminPassphraseHeader carries the shared admin passphrase on every admin request.
const AdminPassphraseHeader = "X-Admin-Passphrase"

// PassphraseVerifier checks a passphrase against the stored one.
type PassphraseVerifier interface {
	Verify(passphrase string) bool
}

type AdminMiddleware struct {
	verifier PassphraseVerifier
}

func NewAdminMiddleware(verifier PassphraseVerifier) *AdminMiddleware {
	return &AdminMiddleware{
		verifier: verifier,
	}
}

// RequireAdmin rejects requests whose passphrase header is missing or wrong.
// The passphrase is read on every request so a change takes effect immediately.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		passphrase := c.GetHeader(AdminPassphraseHeader)
		if passphrase == "" {
			log.Warn("Missing admin passphrase header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "관리자 인증이 필요합니다")
			c.Abort()
			return
		}

		if !m.verifier.Verify(passphrase) {
			log.Warn("Invalid admin passphrase", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "비밀번호가 올바르지 않습니다")
			c.Abort()
			return
		}

		log.Debug("Admin authenticated", map[string]interface{}{
			"path": c.Request.URL.Path,
		})
		c.Next()
	}
}
