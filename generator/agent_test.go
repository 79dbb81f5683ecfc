package generator

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil)
	require.Error(t, err)
}

func TestSuggestTitlesSingleCall(t *testing.T) {
	fake := &recordingLLM{out: "  Here are the 10 top values.\n 1. One \n"}
	agent, err := NewAgent(fake)
	require.NoError(t, err)

	raw, err := agent.SuggestTitles(context.Background(), "remote work")
	require.NoError(t, err)

	// Raw output is returned unmodified.
	assert.Equal(t, "  Here are the 10 top values.\n 1. One \n", raw)

	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].User, "remote work")
	assert.Empty(t, calls[0].System)
}

func TestWriteBlogPassesLengthUnclamped(t *testing.T) {
	for _, length := range []int{MinBlogLength, MaxBlogLength} {
		fake := &recordingLLM{out: "post"}
		agent, err := NewAgent(fake)
		require.NoError(t, err)

		_, err = agent.WriteBlog(context.Background(), BlogRequest{
			Title:  "Title",
			Length: length,
			Tone:   ToneFormal,
			Style:  StyleNews,
		})
		require.NoError(t, err)

		calls := fake.calls()
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0].User, "content length of "+strconv.Itoa(length)+" words")
	}
}

func TestWriteBlogZeroKeywords(t *testing.T) {
	fake := &recordingLLM{out: "post"}
	agent, err := NewAgent(fake)
	require.NoError(t, err)

	out, err := agent.WriteBlog(context.Background(), BlogRequest{Length: 300, Tone: ToneCasual, Style: StyleNews})
	require.NoError(t, err)
	assert.Equal(t, "post", out)
	assert.Contains(t, fake.calls()[0].User, "these keywords: .")
}

func TestWriteBlogJoinsKeywords(t *testing.T) {
	fake := &recordingLLM{out: "post"}
	agent, err := NewAgent(fake)
	require.NoError(t, err)

	_, err = agent.WriteBlog(context.Background(), BlogRequest{
		Title:    "x",
		Keywords: []string{"ai", "blogging"},
		Length:   200,
		Tone:     ToneProfessional,
		Style:    StyleListicle,
	})
	require.NoError(t, err)
	assert.Contains(t, fake.calls()[0].User, "these keywords: ai, blogging.")
}

func TestGenerateErrors(t *testing.T) {
	upstream := errors.New("429 too many requests")
	agent, err := NewAgent(&recordingLLM{err: upstream})
	require.NoError(t, err)

	_, err = agent.SuggestTitles(context.Background(), "t")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.Contains(t, err.Error(), "title_suggestion")

	agent, err = NewAgent(&recordingLLM{out: " \n\t"})
	require.NoError(t, err)
	_, err = agent.WriteBlog(context.Background(), BlogRequest{Length: 100})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestAgentWithSystem(t *testing.T) {
	fake := &recordingLLM{out: "ok"}
	agent, err := NewAgent(fake)
	require.NoError(t, err)
	agent.WithSystem("be brief")

	_, err = agent.SuggestTitles(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, "be brief", fake.calls()[0].System)
}

