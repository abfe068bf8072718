package authutils

import (
	"recruitment-backend/config"
	"recruitment-backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

func GetToken(userID, name, companyID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":    name,
		"sub":     userID,
		"company": companyID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":    name,
		"sub":     userID,
		"refresh": true,
		"exp":     time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// ParseRefreshToken проверяет refresh token и возвращает идентификатор пользователя
func ParseRefreshToken(tokenString string) (userID string, err error) {
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("неожиданный алгоритм подписи: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "некорректный refresh token")
	}
	if refresh, _ := claims["refresh"].(bool); !refresh {
		return "", errors.New("передан не refresh token")
	}
	userID, _ = claims["sub"].(string)
	if userID == "" {
		return "", errors.New("в refresh token отсутствует пользователь")
	}
	return userID, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
