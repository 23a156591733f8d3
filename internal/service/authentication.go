package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cache"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

const (
	AccessTokenTTL  = 12 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// InvalidCredentials is the single message for any failed login.
const InvalidCredentials = "usuário ou senha inválidos"

var (
	randRead        = rand.Read
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims

	getUserByUsername = store.GetUserByUsername
)

// CustomClaims is the JWT payload.
type CustomClaims struct {
	UserID   int        `json:"id"`
	Username string     `json:"usuario"`
	Name     string     `json:"nome"`
	Role     model.Role `json:"perfil"`
	jwt.RegisteredClaims
}

// AuthenticateUser looks the user up by e-mail and checks the password. Both
// an unknown user and a wrong password yield the same Unauthorized error.
func AuthenticateUser(ctx context.Context, db database.Querier, username, password string) (*model.User, error) {
	user, err := getUserByUsername(ctx, db, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Unauthorized(InvalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperr.Unauthorized(InvalidCredentials)
	}
	return user, nil
}

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// IssueAccessToken signs an HS256 token for user valid for ttl.
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := CustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken validates the signature and expiry of tokenString.
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RefreshTokenData is stored in the cache under the refresh token.
type RefreshTokenData struct {
	UserID int `json:"user_id"`
}

func refreshKey(token string) string {
	return cache.Key("refresh_token", token)
}

// IssueRefreshToken creates an opaque token and stores it for ttl.
func IssueRefreshToken(ctx context.Context, c cache.Cache, userID int, ttl time.Duration) (string, error) {
	b := make([]byte, 32)
	if _, err := randRead(b); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(b)

	data, err := jsonMarshal(RefreshTokenData{UserID: userID})
	if err != nil {
		return "", err
	}
	if err := c.Set(ctx, refreshKey(token), data, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ValidateRefreshToken returns the data stored for token, or an
// Unauthorized error when the token is unknown or expired.
func ValidateRefreshToken(ctx context.Context, c cache.Cache, token string) (*RefreshTokenData, error) {
	val, err := c.Get(ctx, refreshKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.Unauthorized("refresh token inválido ou expirado")
	}
	if err != nil {
		return nil, err
	}
	var data RefreshTokenData
	if err := jsonUnmarshal(val, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func RevokeRefreshToken(ctx context.Context, c cache.Cache, token string) error {
	return c.Del(ctx, refreshKey(token)).Err()
}
