package llm

import (
	"context"
	"sync"
)

// Unavailable is a Client that always fails. It stands in when no
// credential is configured or the provider is set to "none".
type Unavailable struct {
	Reason error
}

// Provider returns "none".
func (u Unavailable) Provider() string {
	return "none"
}

// Generate always returns the configured reason, or ErrNotConfigured.
func (u Unavailable) Generate(ctx context.Context, prompt string) (string, error) {
	if u.Reason != nil {
		return "", u.Reason
	}
	return "", ErrNotConfigured
}

// StubClient is a deterministic Client for tests. It returns Text and Err
// for every call and records the prompts it receives.
type StubClient struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

// Provider returns "stub".
func (s *StubClient) Provider() string {
	return "stub"
}

// Generate records prompt and returns the canned reply.
func (s *StubClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Text, s.Err
}

// Prompts returns a copy of the prompts received so far.
func (s *StubClient) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// Calls returns the number of Generate calls.
func (s *StubClient) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
