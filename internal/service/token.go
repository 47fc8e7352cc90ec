package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/DouglasTanno/TaskManagementAPI/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = time.Hour

// ErrInvalidToken covers every verification failure: bad signature,
// wrong issuer or audience, expired lifetime, malformed subject.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller identity extracted from a bearer
// token. It is produced once by the auth middleware and handed to
// handlers, which never re-parse claims themselves.
type Identity struct {
	UserID   int
	Username string
}

type tokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens bound to the
// configured issuer and audience.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
}

func NewTokenManager(secret, issuer, audience string) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Issue signs a token for the user: the name claim carries the
// username, the subject carries the user id as a string, and the
// lifetime is fixed at one hour from issuance.
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Name: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates the token and returns the typed identity it proves.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: userID, Username: claims.Name}, nil
}
