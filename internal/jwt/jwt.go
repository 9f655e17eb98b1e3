package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HeaderName is the request header carrying the session token.
const HeaderName = "X-Auth-Token"

var (
	// ErrNoToken is returned when the token header is absent.
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidToken is returned when a token is malformed or fails verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the identity carried by a session token.
type Claims struct {
	PlayerID uuid.UUID
	Email    string
	IsAdmin  bool
}

// JWT issues and verifies signed session tokens.
type JWT struct {
	secretKey string
	exp       time.Duration // zero disables the exp claim
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the token lifetime. A zero duration issues
// tokens without an exp claim, which never expire.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token carrying the player's identity and role.
func (j *JWT) Generate(ctx context.Context, playerID uuid.UUID, email string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"player_id": playerID.String(),
		"email":     email,
		"is_admin":  isAdmin,
		"iat":       time.Now().Unix(),
	}
	if j.exp != 0 {
		claims["exp"] = time.Now().Add(j.exp).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses the token string and returns its claims if the
// signature verifies. Expiry is enforced only for tokens that carry
// an exp claim.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idStr, ok := mapClaims["player_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	playerID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	isAdmin, _ := mapClaims["is_admin"].(bool)

	return &Claims{
		PlayerID: playerID,
		Email:    email,
		IsAdmin:  isAdmin,
	}, nil
}

// GetTokenFromRequest extracts the raw token string from the X-Auth-Token header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	token := r.Header.Get(HeaderName)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
