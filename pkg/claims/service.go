package claims

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Token header constants per RFC 7519. HMAC-SHA256 keeps the implementation
// dependency-free and symmetric: the application both issues and verifies.
const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Service issues and verifies LoreKit session tokens. The signing key lives
// in memory only and should be at least 32 bytes.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithIssuer stamps issued tokens with an issuer claim.
func WithIssuer(issuer string) ServiceOption {
	return func(s *Service) { s.issuer = issuer }
}

// WithTTL sets the lifetime applied to issued tokens. Zero disables expiry
// stamping (the claims may still carry their own).
func WithTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) { s.ttl = ttl }
}

// NewService creates a token service with the provided signing key.
func NewService(signingKey string, opts ...ServiceOption) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}

	s := &Service{signingKey: []byte(signingKey)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs the claims into a compact token, stamping issuer, issue time,
// and expiry when the service is configured with them and the claims do not
// already carry values.
func (s *Service) Issue(c Claims) (string, error) {
	now := time.Now()
	if c.IssuedAt == 0 {
		c.IssuedAt = now.Unix()
	}
	if c.ExpiresAt == 0 && s.ttl > 0 {
		c.ExpiresAt = now.Add(s.ttl).Unix()
	}
	if c.Issuer == "" {
		c.Issuer = s.issuer
	}

	headerJSON, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", err
	}
	claimsJSON, err := json.Marshal(c)
	if err != nil {
		return "", err
	}

	payload := encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Parse verifies the token signature and temporal claims and returns the
// decoded claims. Signature comparison is constant-time.
func (s *Service) Parse(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return Claims{}, ErrInvalidSignature
	}

	headerJSON, err := decodeSegment(parts[0])
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	// Reject unexpected algorithms to prevent algorithm confusion attacks.
	if h.Algorithm != headerAlgorithm {
		return Claims{}, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := decodeSegment(parts[1])
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	var c Claims
	if err := json.Unmarshal(claimsJSON, &c); err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}

	if err := c.Valid(); err != nil {
		return Claims{}, err
	}
	return c, nil
}

func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return encodeSegment(h.Sum(nil))
}

func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(segment)
}
