package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cache"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead = rand.Read
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	getUserByUsername = store.GetUserByUsername
	restoreStore()
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	db := &database.FakeDB{}

	getUserByUsername = func(_ context.Context, _ database.Querier, username string) (*model.User, error) {
		if username != "ana@x.com" {
			return nil, pgx.ErrNoRows
		}
		return &model.User{ID: 1, Username: username, PasswordHash: hash, Role: model.RoleUser}, nil
	}

	u, err := AuthenticateUser(context.Background(), db, "ana@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)

	_, err = AuthenticateUser(context.Background(), db, "ana@x.com", "bad")
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	_, err = AuthenticateUser(context.Background(), db, "bob@x.com", "pw")
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	require.Equal(t, InvalidCredentials, apperr.Message(err))

	getUserByUsername = func(context.Context, database.Querier, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err = AuthenticateUser(context.Background(), db, "ana@x.com", "pw")
	require.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := IssueAccessToken(model.User{}, time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAccessToken(model.User{ID: 5, Username: "a@b.c", Name: "Ana", Role: model.RoleAdmin}, time.Minute)
	require.NoError(t, err)
	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, "5", claims.Subject)

	sess := SessionFromClaims(claims)
	require.True(t, sess.IsAdmin())
	require.Equal(t, "Ana", sess.Name)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone)
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, _ := IssueAccessToken(model.User{ID: 3, Role: model.RoleUser}, time.Minute)
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 3, claims.UserID)
	require.False(t, SessionFromClaims(claims).IsAdmin())

	timeNow = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _ := IssueAccessToken(model.User{ID: 3}, time.Minute)
	_, err = VerifyAccessToken(expired)
	require.Error(t, err)
}

func TestIssueRefreshToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	c := &cache.FakeCache{}

	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	_, err := IssueRefreshToken(ctx, c, 1, time.Second)
	require.Error(t, err)

	randRead = rand.Read
	jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("json") }
	_, err = IssueRefreshToken(ctx, c, 1, time.Second)
	require.Error(t, err)

	jsonMarshal = json.Marshal
	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("set"))
	}
	_, err = IssueRefreshToken(ctx, c, 1, time.Second)
	require.Error(t, err)

	var storedKey string
	var storedVal []byte
	c.SetFn = func(_ context.Context, key string, val any, _ time.Duration) *redis.StatusCmd {
		storedKey = key
		storedVal = val.([]byte)
		return redis.NewStatusResult("OK", nil)
	}
	tok, err := IssueRefreshToken(ctx, c, 1, time.Second)
	require.NoError(t, err)
	require.Equal(t, "gestor:refresh_token:"+tok, storedKey)
	decoded, _ := base64.RawURLEncoding.DecodeString(tok)
	require.Len(t, decoded, 32)
	var d RefreshTokenData
	require.NoError(t, json.Unmarshal(storedVal, &d))
	require.Equal(t, 1, d.UserID)
}

func TestValidateAndRevokeRefreshToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	c := &cache.FakeCache{}

	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", redis.Nil)
	}
	_, err := ValidateRefreshToken(ctx, c, "tok")
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("get"))
	}
	_, err = ValidateRefreshToken(ctx, c, "tok")
	require.Error(t, err)

	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("bad", nil)
	}
	jsonUnmarshal = func([]byte, any) error { return errors.New("unmarshal") }
	_, err = ValidateRefreshToken(ctx, c, "tok")
	require.Error(t, err)

	jsonUnmarshal = json.Unmarshal
	dataBytes, _ := json.Marshal(RefreshTokenData{UserID: 2})
	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult(string(dataBytes), nil)
	}
	data, err := ValidateRefreshToken(ctx, c, "tok")
	require.NoError(t, err)
	require.Equal(t, 2, data.UserID)

	var deleted []string
	c.DelFn = func(_ context.Context, keys ...string) *redis.IntCmd {
		deleted = keys
		return redis.NewIntResult(1, nil)
	}
	require.NoError(t, RevokeRefreshToken(ctx, c, "tok"))
	require.Equal(t, []string{"gestor:refresh_token:tok"}, deleted)
}
