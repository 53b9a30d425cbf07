package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestEncode_ExactShape(t *testing.T) {
	c := NewCodec(0).WithClock(fixedClock(1_700_000_000))

	tok := c.Encode("a@x.com", "Ann")

	want := b64(`{"alg":"HS256","typ":"JWT"}`) + "." +
		b64(`{"sub":"a@x.com","name":"Ann","iat":1700000000,"exp":1700086400}`) + "." +
		b64("taskflow-signature")
	assert.Equal(t, want, tok)
}

func TestEncode_DoesNotEscapeHTML(t *testing.T) {
	c := NewCodec(time.Hour).WithClock(fixedClock(100))

	tok := c.Encode("a&b@x.com", "<Ann>")
	raw, err := base64.StdEncoding.DecodeString(strings.Split(tok, ".")[1])
	require.NoError(t, err)
	assert.Equal(t, `{"sub":"a&b@x.com","name":"<Ann>","iat":100,"exp":3700}`, string(raw))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := NewCodec(DefaultTTL).WithClock(fixedClock(1_000))

	claims, ok := Decode(c.Encode("e@x.com", "Eve"))
	require.True(t, ok)

	sub, ok := Subject(claims)
	require.True(t, ok)
	assert.Equal(t, "e@x.com", sub)
	assert.Equal(t, "Eve", claims["name"])

	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, int64(86400), exp.Unix()-iat.Unix())
}

func TestDecode_Malformed(t *testing.T) {
	good := b64(`{"sub":"a@x.com","exp":10}`)

	tests := []struct {
		name string
		tok  string
	}{
		{"empty", ""},
		{"one part", good},
		{"two parts", "h." + good},
		{"four parts", "h." + good + ".s.x"},
		{"bad base64", "h.!!!.s"},
		{"not json", "h." + b64("hello") + ".s"},
		{"json array", "h." + b64(`[1,2]`) + ".s"},
		{"json number", "h." + b64(`5`) + ".s"},
		{"json null", "h." + b64(`null`) + ".s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Decode(tt.tok)
			assert.False(t, ok)
		})
	}
}

func TestDecode_AcceptsUnpaddedPayload(t *testing.T) {
	p := base64.RawStdEncoding.EncodeToString([]byte(`{"sub":"a@x.com"}`))
	claims, ok := Decode("h." + p + ".s")
	require.True(t, ok)
	sub, ok := Subject(claims)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", sub)
}

func TestSubject_TypeChecks(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		ok      bool
	}{
		{"string", `{"sub":"a@x.com"}`, "a@x.com", true},
		{"missing", `{"name":"Ann"}`, "", false},
		{"number", `{"sub":42}`, "", false},
		{"empty string", `{"sub":""}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, ok := Decode("h." + b64(tt.payload) + ".s")
			require.True(t, ok)
			sub, ok := Subject(claims)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, sub)
		})
	}
}

func TestIsExpired_Boundaries(t *testing.T) {
	const now = 1_000_000
	c := NewCodec(DefaultTTL).WithClock(fixedClock(now))

	tokWithExp := func(exp string) string {
		return "h." + b64(`{"sub":"a@x.com","exp":`+exp+`}`) + ".s"
	}

	assert.True(t, c.IsExpired(tokWithExp("999999")), "exp = now-1")
	assert.True(t, c.IsExpired(tokWithExp("1000000")), "exp = now")
	assert.False(t, c.IsExpired(tokWithExp("1000001")), "exp = now+1")
	assert.True(t, c.IsExpired(tokWithExp(`"1000001"`)), "string exp")
	assert.True(t, c.IsExpired(tokWithExp("null")), "null exp")
	assert.True(t, c.IsExpired("h."+b64(`{"sub":"a@x.com"}`)+".s"), "missing exp")
	assert.True(t, c.IsExpired(""), "empty token")
	assert.True(t, c.IsExpired("garbage"), "malformed token")
}

func TestIsExpired_FractionalExp(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	c := NewCodec(DefaultTTL).WithClock(func() time.Time { return now })
	tok := "h." + b64(`{"sub":"a@x.com","exp":1000000.5}`) + ".s"

	assert.False(t, c.IsExpired(tok), "exp = now+0.5")

	now = now.Add(499 * time.Millisecond)
	assert.False(t, c.IsExpired(tok))

	now = now.Add(time.Millisecond)
	assert.True(t, c.IsExpired(tok), "exp = now")
}

func TestIsExpired_FreshTokenUntilTTL(t *testing.T) {
	now := int64(5_000)
	c := NewCodec(time.Hour).WithClock(func() time.Time { return time.Unix(now, 0) })

	tok := c.Encode("a@x.com", "Ann")
	assert.False(t, c.IsExpired(tok))

	now += 3599
	assert.False(t, c.IsExpired(tok))

	now++
	assert.True(t, c.IsExpired(tok))
}
