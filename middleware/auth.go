package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"course_catalog/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware creates a gin middleware for JWT authentication. Only
// tokens carrying the editor claim are let through.
func AuthMiddleware(jwtSecret []byte, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be in the format: Bearer {token}"})
			return
		}

		claims, err := ParseToken(jwtSecret, parts[1])
		if err != nil {
			log.WithError(err).Debug("token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if !claims.Editor {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Only editors can change courses"})
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(jwtSecret []byte, tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// TokenService issues bearer tokens for the catalog API.
type TokenService struct {
	JWTSecret []byte
	TTL       time.Duration
}

func NewTokenService(jwtSecret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		JWTSecret: jwtSecret,
		TTL:       ttl,
	}
}

// GenerateToken signs a token for subject.
func (s *TokenService) GenerateToken(subject string, editor bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		Editor: editor,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
