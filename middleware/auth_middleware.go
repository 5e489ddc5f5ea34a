package middleware

import (
	"net/http"
	"strings"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
)

// kunci context yang diisi middleware dan dibaca service.
const (
	CtxUserID      = "userID"
	CtxMahasiswaID = "mahasiswaID"
	CtxDosenID     = "dosenID"
	CtxRole        = "role"
)

// AuthMiddleware memvalidasi JWT dari header Authorization (Bearer token)
// dan menyimpan identitas aktor (userID, mahasiswaID, dosenID, role) ke context.
// Request tanpa token valid selalu berhenti di sini sebagai Unauthorized;
// tidak ada entry point core yang bisa dipanggil tanpa aktor.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "missing_or_invalid_authorization_header", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "empty_token", nil))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Invalid or expired token", err.Error(), nil))
			c.Abort()
			return
		}

		role, err := model.ParseRole(claims.Role)
		if err != nil {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Invalid or expired token", err.Error(), nil))
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxMahasiswaID, claims.MahasiswaID) // uuid.Nil jika bukan mahasiswa
		c.Set(CtxDosenID, claims.DosenID)         // uuid.Nil jika bukan dosen
		c.Set(CtxRole, role)

		c.Next()
	}
}
