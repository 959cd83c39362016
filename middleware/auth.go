package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/sessions"
	"github.com/poem-space/api-go/utils"
)

// resolveIdentity tries the server-side session first, then the bearer
// token. The first strategy that matches wins; both failing yields nil.
func resolveIdentity(c *gin.Context, store sessions.Store) *utils.UserClaims {
	if cookie, err := c.Cookie(sessions.CookieName); err == nil && cookie != "" {
		if data, err := store.Get(c.Request.Context(), cookie); err == nil {
			return &utils.UserClaims{UserID: data.UserID, Username: data.Username}
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
		return nil
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	// Expired and malformed tokens both fall through to the generic failure path.
	if err != nil || !parsedToken.Valid {
		return nil
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}

	username, _ := claims["username"].(string)

	return &utils.UserClaims{UserID: uint(userID), Username: username}
}

// AuthMiddleware rejects requests that carry neither a valid session nor a
// valid bearer token.
func AuthMiddleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveIdentity(c, store)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, please login"})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller identity when present but lets
// anonymous requests through. Used on reads that only narrow visibility.
func OptionalAuthMiddleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolveIdentity(c, store); user != nil {
			c.Set(string(utils.UserContextKey), user)
		}
		c.Next()
	}
}
