// Package token mints and reads TaskFlow session tokens.
//
// A token has the JWT shape header.payload.signature, but each segment is
// standard base64 (with padding) and the signature is a fixed marker, not a
// MAC. Tokens only mark a local session; nothing here authenticates them.
package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a freshly minted token stays valid.
const DefaultTTL = 24 * time.Hour

// Signature is the constant third segment, before base64.
const Signature = "taskflow-signature"

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// payload keeps the claim order sub, name, iat, exp.
type payload struct {
	Sub  string `json:"sub"`
	Name string `json:"name"`
	Iat  int64  `json:"iat"`
	Exp  int64  `json:"exp"`
}

type Codec struct {
	ttl time.Duration
	now func() time.Time
}

// NewCodec returns a codec minting tokens valid for ttl; a non-positive ttl
// means DefaultTTL.
func NewCodec(ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Encode mints a token for the given identity.
func (c *Codec) Encode(email, fullName string) string {
	iat := c.now().Unix()

	h := encodeSegment(header{Alg: jwt.SigningMethodHS256.Alg(), Typ: "JWT"})
	p := encodeSegment(payload{
		Sub:  email,
		Name: fullName,
		Iat:  iat,
		Exp:  iat + int64(c.ttl/time.Second),
	})
	s := base64.StdEncoding.EncodeToString([]byte(Signature))

	return h + "." + p + "." + s
}

// IsExpired reports whether tok is unusable: undecodable, without a numeric
// exp claim, or with now >= exp.
func (c *Codec) IsExpired(tok string) bool {
	claims, ok := Decode(tok)
	if !ok {
		return true
	}

	// compared on the raw number: a fractional exp is not rounded
	exp, ok := claims["exp"].(float64)
	if !ok {
		return true
	}
	now := float64(c.now().UnixMilli()) / 1000
	return now >= exp
}

// Decode returns the payload claims of tok. The signature is not checked.
// It reports false for empty input, a segment count other than three, or a
// payload that is not base64-encoded JSON object.
func Decode(tok string) (jwt.MapClaims, bool) {
	if tok == "" {
		return nil, false
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return nil, false
	}

	raw, err := decodeSegment(parts[1])
	if err != nil {
		return nil, false
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(raw, &claims); err != nil || claims == nil {
		return nil, false
	}
	return claims, true
}

// Subject returns the sub claim when it is a non-empty string.
func Subject(claims jwt.MapClaims) (string, bool) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}

func encodeSegment(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// keep "<", ">" and "&" literal in names and emails
	enc.SetEscapeHTML(false)
	// encoding a struct of strings and ints into a buffer cannot fail
	_ = enc.Encode(v)

	return base64.StdEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n"))
}

func decodeSegment(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
