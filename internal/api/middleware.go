package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const localsUserID = "userID"

// RequireUser extracts the acting user's id from a bearer token issued
// by the identity provider. The core never authenticates beyond this:
// every handler compares ids, nothing more.
func RequireUser(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID, err := verifyToken(ctx.Get("Authorization"), secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals(localsUserID, userID)
		return ctx.Next()
	}
}

// currentUser returns the id the middleware stored for this request.
func currentUser(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, ok := ctx.Locals(localsUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.New("missing auth user in context")
	}
	return id, nil
}

func verifyToken(header, secret string) (uuid.UUID, error) {
	tokenStr := strings.TrimSpace(header)
	if tokenStr == "" {
		return uuid.Nil, errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
		parts := strings.SplitN(tokenStr, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return uuid.Nil, errors.New("invalid token format")
		}
		tokenStr = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, errors.New("missing subject claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("subject is not a user id")
	}

	return userID, nil
}
