package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidChannelToken covers bad signatures, malformed payloads and
// expired tokens alike. Callers bind the connection to the sentinel room
// on any failure.
var ErrInvalidChannelToken = errors.New("invalid channel token")

// ChannelSigner issues stateless credentials binding a user to a match
// room. The payload "userId:matchId:issuedAt" is HMAC-SHA256 signed, so
// verification needs no database lookup.
type ChannelSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewChannelSigner creates a signer. A ttl of zero or less disables the
// age check.
func NewChannelSigner(secret string, ttl time.Duration) *ChannelSigner {
	return &ChannelSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign returns a token of the form base64(payload).hex(hmac).
func (s *ChannelSigner) Sign(userID string, matchID int64) string {
	payload := fmt.Sprintf("%s:%d:%d", userID, matchID, time.Now().Unix())
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + s.signature(payload)
}

// Verify checks the signature and token age and extracts the bound
// identity. All failures collapse into ErrInvalidChannelToken.
func (s *ChannelSigner) Verify(token string) (userID string, matchID int64, err error) {
	encoded, sig, found := strings.Cut(token, ".")
	if !found {
		return "", 0, ErrInvalidChannelToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", 0, ErrInvalidChannelToken
	}
	payload := string(raw)

	if !hmac.Equal([]byte(sig), []byte(s.signature(payload))) {
		return "", 0, ErrInvalidChannelToken
	}

	// User ids are opaque and may contain ':', so split from the right.
	rest, issuedStr, ok := cutLast(payload, ":")
	if !ok {
		return "", 0, ErrInvalidChannelToken
	}
	userID, matchStr, ok := cutLast(rest, ":")
	if !ok {
		return "", 0, ErrInvalidChannelToken
	}

	matchID, err = strconv.ParseInt(matchStr, 10, 64)
	if err != nil || matchID <= 0 {
		return "", 0, ErrInvalidChannelToken
	}

	issued, err := strconv.ParseInt(issuedStr, 10, 64)
	if err != nil {
		return "", 0, ErrInvalidChannelToken
	}
	if s.ttl > 0 {
		age := time.Since(time.Unix(issued, 0))
		if age > s.ttl || age < -time.Minute {
			return "", 0, ErrInvalidChannelToken
		}
	}

	return userID, matchID, nil
}

func (s *ChannelSigner) signature(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
