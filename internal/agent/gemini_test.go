package agent

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaduha/ovp/internal/vocab"
)

func TestNewGeminiAgentWithoutKey(t *testing.T) {
	agent, err := NewGeminiAgent(context.Background(), "", "", vocab.NewStore())
	require.NoError(t, err)
	assert.Nil(t, agent)
}

// Candidate shapes may be attempted in parallel against one agent, so
// request-scoped model state (system instruction, response type) must not
// be shared between calls. Run with -race.
func TestGeminiAgentConcurrentGeneration(t *testing.T) {
	store := vocab.NewStore()
	agent, err := NewGeminiAgent(context.Background(), "test-key", "", store)
	require.NoError(t, err)
	require.NotNil(t, agent)
	defer agent.Close()

	// A cancelled context fails each call at the API boundary without
	// touching the network; the per-request model setup still runs.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	const iterations = 20
	var wg sync.WaitGroup
	for i := 0; i < iterations; i++ {
		for _, shape := range DefaultShapes(store) {
			wg.Add(1)
			go func(shape CandidateShape) {
				defer wg.Done()
				_, err := agent.GenerateSentence(ctx, "I sleep.", shape)
				assert.Error(t, err)
			}(shape)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := agent.BackTranslate(ctx, "nüü üwi-dü")
			assert.Error(t, err)
		}()
	}
	wg.Wait()
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                     "{\"a\":1}",
		"```json\n{\"a\":1}\n```":       "{\"a\":1}",
		"```\n{\"a\":1}\n```":           "{\"a\":1}",
		"  \n```json\n{\"a\":1}\n```\n": "{\"a\":1}",
	}
	for in, want := range cases {
		if got := stripFences(in); got != want {
			t.Errorf("stripFences(%q) = %q, want %q", in, got, want)
		}
	}
	if strings.Contains(stripFences("```json\n{}\n```"), "`") {
		t.Error("fence characters left in output")
	}
}
