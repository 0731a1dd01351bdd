package service

import (
	"fmt"
	"math/rand"
	"strings"
)

// dsaResponses maps interview-prep keywords to canned hints. Matching is a
// case-insensitive substring scan over the incoming message.
var dsaResponses = map[string]string{
	"two pointers":   "Two Pointers: Valid Palindrome, Container With Most Water. O(n) time!",
	"sliding window": "Sliding Window: Longest Substring Without Repeat. Hashmap + two pointers.",
	"two sum":        "Two Sum: Hashmap stores complement. O(n) time!",
	"binary search":  "Binary Search: Sorted array. left <= right, mid=(left+right)//2.",
	"dp":             "DP: Fibonacci dp[i]=dp[i-1]+dp[i-2]. Memoization or tabulation.",
}

var chatFallbacks = []string{
	"Try: 'two pointers', 'sliding window', 'resume', 'SDE-1 salary'",
	"Guled's portfolio: 156 LeetCode solved, React expert, job hunting! 🚀",
}

// ChatService answers prep questions from a static keyword table.
type ChatService struct {
	responses map[string]string
	fallbacks []string
}

// NewChatService constructs the service with the built-in response table.
func NewChatService() *ChatService {
	return &ChatService{responses: dsaResponses, fallbacks: chatFallbacks}
}

// Reply matches the message against known keywords and falls back to a
// random hint when nothing matches.
func (s *ChatService) Reply(message string) string {
	lowered := strings.ToLower(message)
	for pattern, response := range s.responses {
		if strings.Contains(lowered, pattern) {
			return fmt.Sprintf("**DSA: %s**\n%s", titleCase(pattern), response)
		}
	}
	return s.fallbacks[rand.Intn(len(s.fallbacks))]
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
