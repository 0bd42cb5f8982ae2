package jwt

import (
	"errors"
	"fmt"
	"time"

	"Food-Sustainability-Backend/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrMissingSecret = errors.New("jwt secret must not be empty")

type (
	JWTService interface {
		GenerateTokenUser(userID string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		Authenticate(token string) (domain.Identity, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey []byte
		issuer    string
		ttl       time.Duration
		now       func() time.Time
	}
)

// NewJWTService fails when no secret is supplied so a misconfigured server
// never starts.
func NewJWTService(secret string, ttl time.Duration) (JWTService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &jwtService{
		secretKey: []byte(secret),
		issuer:    "FOOD-SUSTAINABILITY",
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

func (j *jwtService) GenerateTokenUser(userID string) (string, error) {
	now := j.now()
	claims := jwtUserClaim{
		userID,
		jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return j.secretKey, nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

// Authenticate is the only place a user id is pulled out of a token.
func (j *jwtService) Authenticate(token string) (domain.Identity, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	raw := claims.UserID
	if raw == "" {
		raw = claims.Subject
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	return domain.Identity{UserID: userID}, nil
}
