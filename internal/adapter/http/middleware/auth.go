package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserName  = "user_full_name"
)

// Identity is the authenticated caller extracted from the bearer token.
type Identity struct {
	UserID   string
	Email    string
	FullName string
}

// RequireAuth validates the Authorization bearer token and stashes the
// caller's identity in the gin context. Unauthenticated requests get a 401
// carrying the sign-in URL so clients know where to send the user.
func RequireAuth(jwtSecret, signInURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":        "UNAUTHENTICATED",
				"message":     "sign in required",
				"sign_in_url": signInURL,
			})
			return
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":        "UNAUTHENTICATED",
				"message":     "invalid or expired session",
				"sign_in_url": signInURL,
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":        "UNAUTHENTICATED",
				"message":     "invalid or expired session",
				"sign_in_url": signInURL,
			})
			return
		}

		c.Set(ContextUserID, stringClaim(claims, "sub"))
		c.Set(ContextUserEmail, stringClaim(claims, "email"))
		c.Set(ContextUserName, stringClaim(claims, "full_name"))
		c.Next()
	}
}

// RequireAdmin gates the price console: only the configured admin email
// passes, everyone else gets a 403 regardless of a valid session.
func RequireAdmin(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)
		if email == "" || email != adminEmail {
			log.Printf("[auth][middleware] admin access denied email=%s", email)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "ACCESS_DENIED",
				"message": "access denied",
			})
			return
		}
		c.Next()
	}
}

// CallerIdentity reads the identity RequireAuth stored on the context.
func CallerIdentity(c *gin.Context) Identity {
	return Identity{
		UserID:   c.GetString(ContextUserID),
		Email:    c.GetString(ContextUserEmail),
		FullName: c.GetString(ContextUserName),
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
