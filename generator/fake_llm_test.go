package generator

import (
	"context"
	"sync"
)

// recordingLLM returns canned output and remembers every prompt it saw.
type recordingLLM struct {
	mu      sync.Mutex
	prompts []Prompt
	out     string
	err     error
}

func (r *recordingLLM) Complete(_ context.Context, p Prompt) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, p)
	return r.out, r.err
}

func (r *recordingLLM) calls() []Prompt {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Prompt, len(r.prompts))
	copy(out, r.prompts)
	return out
}
