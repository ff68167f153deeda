package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelSigner_RoundTrip(t *testing.T) {
	signer := NewChannelSigner("test-channel-secret", time.Hour)

	token := signer.Sign("alice", 42)
	userID, matchID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
	assert.Equal(t, int64(42), matchID)
}

func TestChannelSigner_UserIDWithColons(t *testing.T) {
	signer := NewChannelSigner("test-channel-secret", time.Hour)

	token := signer.Sign("github:oauth:12345", 7)
	userID, matchID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "github:oauth:12345", userID)
	assert.Equal(t, int64(7), matchID)
}

func TestChannelSigner_RejectsTamperedPayload(t *testing.T) {
	signer := NewChannelSigner("test-channel-secret", time.Hour)

	token := signer.Sign("alice", 42)
	other := signer.Sign("mallory", 99)

	// Splice mallory's payload onto alice's signature.
	_, aliceSig, _ := strings.Cut(token, ".")
	malloryPayload, _, _ := strings.Cut(other, ".")

	_, _, err := signer.Verify(malloryPayload + "." + aliceSig)
	assert.ErrorIs(t, err, ErrInvalidChannelToken)
}

func TestChannelSigner_RejectsWrongSecret(t *testing.T) {
	signer := NewChannelSigner("test-channel-secret", time.Hour)
	imposter := NewChannelSigner("some-other-secret", time.Hour)

	_, _, err := signer.Verify(imposter.Sign("alice", 42))
	assert.ErrorIs(t, err, ErrInvalidChannelToken)
}

func TestChannelSigner_RejectsMalformed(t *testing.T) {
	signer := NewChannelSigner("test-channel-secret", time.Hour)

	for _, token := range []string{
		"",
		"no-separator",
		"!!!notbase64.deadbeef",
		"YWJj.deadbeef", // payload "abc" has no fields
	} {
		_, _, err := signer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidChannelToken, "token %q", token)
	}
}

func TestChannelSigner_RejectsExpired(t *testing.T) {
	signer := NewChannelSigner("test-channel-secret", time.Nanosecond)

	token := signer.Sign("alice", 42)
	time.Sleep(10 * time.Millisecond)

	_, _, err := signer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidChannelToken)
}

func TestChannelSigner_ZeroTTLDisablesAgeCheck(t *testing.T) {
	signer := NewChannelSigner("test-channel-secret", 0)

	userID, matchID, err := signer.Verify(signer.Sign("alice", 42))
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
	assert.Equal(t, int64(42), matchID)
}
