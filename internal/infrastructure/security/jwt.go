package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
)

// Claims é o payload dos tokens de acesso
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenService com HS256
type JWTService struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// NewJWTService cria o serviço de tokens. now pode ser nil (usa time.Now).
func NewJWTService(secret, issuer string, expiry time.Duration, now func() time.Time) *JWTService {
	if now == nil {
		now = time.Now
	}
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
		now:    now,
	}
}

var _ ports.TokenService = (*JWTService)(nil)

// Issue assina um token com expiração absoluta em now + expiry
func (s *JWTService) Issue(user *entities.User) (ports.IssuedToken, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.expiry)

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return ports.IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Verify valida assinatura e expiração.
// Token vencido retorna ErrTokenExpired; qualquer outra falha retorna ErrTokenInvalid.
func (s *JWTService) Verify(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	return &ports.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   entities.Role(claims.Role),
	}, nil
}
