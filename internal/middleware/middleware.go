package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetJWTSecret configures the HMAC secret used to validate bearer tokens.
// Must be called once at startup before any protected route is served.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// JWTAuth validates the Bearer token on the request and stores the user
// identity and role in the Gin context for downstream handlers.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondUnauthorized(c, "Missing Authorization header. A valid Bearer token is required.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondUnauthorized(c, "Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			respondUnauthorized(c, "Bearer token is empty")
			return
		}

		claims, err := parseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			respondUnauthorized(c, err.Error())
			return
		}

		if err := extractAndSetClaims(c, claims); err != nil {
			respondUnauthorized(c, err.Error())
			return
		}

		c.Next()
	}
}

func respondUnauthorized(c *gin.Context, description string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": description})
	c.Abort()
}

// parseAndValidateJWT parses the JWT and performs strict validation of the
// time-based claims
func parseAndValidateJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	now := time.Now()

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil && exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	nbf, err := claims.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("invalid nbf claim: %w", err)
	}
	if nbf != nil && nbf.After(now) {
		return nil, fmt.Errorf("token not yet valid")
	}

	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// extractAndSetClaims extracts the user identity from JWT claims and sets it
// in the Gin context
func extractAndSetClaims(c *gin.Context, claims jwt.MapClaims) error {
	user, ok := claims["user"].(string)
	if !ok || user == "" {
		return fmt.Errorf("token missing required 'user' claim")
	}
	c.Set("userID", user)

	role, err := extractRole(claims)
	if err != nil {
		return err
	}
	c.Set("userRole", role)

	return nil
}

// extractRole extracts and validates the role from JWT claims. All tokens
// must carry an explicit role claim; no defaults are provided.
func extractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token missing required 'role' claim. Tokens must explicitly specify user roles")
	}

	allowedRoles := map[string]bool{
		"admin": true,
		"user":  true,
	}
	if !allowedRoles[role] {
		return "", fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", role)
	}

	return role, nil
}
