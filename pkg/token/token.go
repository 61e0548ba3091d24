package token

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Role     string    `json:"role"`
	IsWorker bool      `json:"isWorker"`
}

type Claims struct {
	User UserInfo `json:"user"`
	jwt.RegisteredClaims
}

// Parser verifies RS256 access tokens issued by the session service.
type Parser struct {
	publicKey *rsa.PublicKey
}

func NewParser(publicKey string) (*Parser, error) {
	pemKey, err := decodeKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(pemKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return &Parser{publicKey: key}, nil
}

func (p *Parser) Parse(accessToken string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return p.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.User.ID.IsNil() {
		return Claims{}, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return claims, nil
}

// decodeKey accepts either a PEM block or its base64 encoding.
func decodeKey(key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("empty key")
	}

	if strings.HasPrefix(key, "-----BEGIN") {
		return []byte(strings.ReplaceAll(key, `\n`, "\n")), nil
	}

	data, err := base64.StdEncoding.DecodeString(key)
	if err == nil {
		return data, nil
	}

	return base64.RawStdEncoding.DecodeString(key)
}
