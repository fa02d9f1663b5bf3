package utils

import (
	"time"

	"residencia/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func GenerateJWTToken(userID uint, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// TokenClaims carries the identity the middleware extracts from a request.
type TokenClaims struct {
	UserID uint
	Role   string
}

func ExtractClaimsFromToken(c *fiber.Ctx, cfg *config.Config) (TokenClaims, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	// Accept both bare tokens and the Bearer scheme.
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return TokenClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	role, _ := claims["role"].(string)

	return TokenClaims{UserID: uint(userIDFloat), Role: role}, nil
}

func ExtractUserIDFromToken(c *fiber.Ctx, cfg *config.Config) (uint, error) {
	claims, err := ExtractClaimsFromToken(c, cfg)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
