package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devfolio/chat-service/internal/model"
)

const defaultTTL = 30 * time.Minute

type Generator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    defaultTTL,
		now:    time.Now,
	}
}

func (g *Generator) GenerateConnectToken(userID string) (model.StreamToken, error) {
	issuedAt, expiresAt := g.window()

	claims := model.CentrifugoConnectClaims{
		RegisteredClaims: g.registered(userID, issuedAt, expiresAt),
	}

	tokenString, err := g.sign(claims)
	if err != nil {
		return model.StreamToken{}, fmt.Errorf("failed to sign connect JWT token: %w", err)
	}

	return model.StreamToken{Token: tokenString, ExpiresAt: expiresAt.Unix()}, nil
}

// GenerateSubscribeToken signs a token granting userID access to a single channel.
func (g *Generator) GenerateSubscribeToken(userID, channel string) (model.StreamToken, error) {
	issuedAt, expiresAt := g.window()

	claims := model.CentrifugoSubscribeClaims{
		RegisteredClaims: g.registered(userID, issuedAt, expiresAt),
		Channel:          channel,
		UserID:           userID,
	}

	tokenString, err := g.sign(claims)
	if err != nil {
		return model.StreamToken{}, fmt.Errorf("failed to sign subscribe JWT token: %w", err)
	}

	return model.StreamToken{Token: tokenString, ExpiresAt: expiresAt.Unix(), Channel: channel}, nil
}

func (g *Generator) ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error) {
	claims := &model.CentrifugoConnectClaims{}
	if err := g.parse(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse connect JWT token: %w", err)
	}

	return claims, nil
}

func (g *Generator) ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error) {
	claims := &model.CentrifugoSubscribeClaims{}
	if err := g.parse(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse subscribe JWT token: %w", err)
	}

	return claims, nil
}

func (g *Generator) window() (time.Time, time.Time) {
	now := g.now()
	return now, now.Add(g.ttl)
}

func (g *Generator) registered(userID string, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

func (g *Generator) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

func (g *Generator) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return err
	}

	if !token.Valid {
		return fmt.Errorf("invalid JWT token")
	}

	return nil
}
