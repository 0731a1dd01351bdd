package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReply_MatchesKnownKeyword(t *testing.T) {
	t.Parallel()

	svc := NewChatService()

	reply := svc.Reply("how do I use TWO POINTERS here?")
	require.True(t, strings.HasPrefix(reply, "**DSA: Two Pointers**"))
	require.Contains(t, reply, "Valid Palindrome")
}

func TestReply_MatchIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	svc := NewChatService()

	reply := svc.Reply("explain Binary Search please")
	require.Contains(t, reply, "Binary Search")
	require.Contains(t, reply, "Sorted array")
}

func TestReply_FallbackForUnknownMessage(t *testing.T) {
	t.Parallel()

	svc := NewChatService()

	reply := svc.Reply("what is the weather like")
	require.Contains(t, chatFallbacks, reply)
}
