package translator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaduha/ovp/internal/agent"
	"github.com/yaduha/ovp/internal/sentence"
	"github.com/yaduha/ovp/internal/vocab"
)

// scriptedGenerator returns canned outcomes keyed by shape name.
type scriptedGenerator struct {
	outcomes map[string]scriptedOutcome
	calls    atomic.Int64
}

type scriptedOutcome struct {
	sentence sentence.Sentence
	err      error
	delay    time.Duration
}

func (g *scriptedGenerator) GenerateSentence(ctx context.Context, source string, shape agent.CandidateShape) (sentence.Sentence, error) {
	g.calls.Add(1)
	out, ok := g.outcomes[shape.Name]
	if !ok {
		return nil, &agent.SchemaValidationError{Shape: shape.Name, Cause: errors.New("no scripted outcome")}
	}
	if out.delay > 0 {
		select {
		case <-time.After(out.delay):
		case <-ctx.Done():
			return nil, &agent.CollaboratorError{Op: "generate", Err: ctx.Err()}
		}
	}
	if out.err != nil {
		return nil, out.err
	}
	return out.sentence, nil
}

type scriptedBackTranslator struct {
	text string
	err  error
}

func (b *scriptedBackTranslator) BackTranslate(ctx context.Context, target string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.text, nil
}

func TestTranslateUsesFirstSuccessfulShape(t *testing.T) {
	store := vocab.NewStore()
	p := New(agent.NewMockAgent(store), store)

	res, err := p.Translate(context.Background(), "I will eat the rice.")
	require.NoError(t, err)
	assert.Equal(t, "I will eat the rice.", res.Source)
	assert.Equal(t, "nüü wai-noka u-düka-wei", res.Target)
	assert.Equal(t, sentence.ShapeSubjectVerbObject, res.Shape)
	require.Len(t, res.Attempts, 1)
	assert.NoError(t, res.Attempts[0].Err)
}

func TestTranslateFallsBackToSimplerShape(t *testing.T) {
	store := vocab.NewStore()
	p := New(agent.NewMockAgent(store), store)

	res, err := p.Translate(context.Background(), "The coyote runs.")
	require.NoError(t, err)
	assert.Equal(t, "isha'-uu poyoha-dü", res.Target)
	assert.Equal(t, sentence.ShapeSubjectVerb, res.Shape)

	require.Len(t, res.Attempts, 2)
	assert.Equal(t, sentence.ShapeSubjectVerbObject, res.Attempts[0].Shape)
	var schemaErr *agent.SchemaValidationError
	assert.ErrorAs(t, res.Attempts[0].Err, &schemaErr)
	assert.Equal(t, sentence.ShapeSubjectVerb, res.Attempts[1].Shape)
	assert.NoError(t, res.Attempts[1].Err)
}

func TestTranslateAllShapesFail(t *testing.T) {
	store := vocab.NewStore()
	gen := &scriptedGenerator{outcomes: map[string]scriptedOutcome{}}
	p := New(gen, store)

	res, err := p.Translate(context.Background(), "Colorless green ideas sleep furiously.")
	assert.Nil(t, res)

	var trErr *TranslationError
	require.ErrorAs(t, err, &trErr)
	assert.Len(t, trErr.Attempts, 2)
	var schemaErr *agent.SchemaValidationError
	assert.ErrorAs(t, trErr.LastErr, &schemaErr)
}

func TestTranslateTransportErrorEndsRequest(t *testing.T) {
	store := vocab.NewStore()
	transport := &agent.CollaboratorError{Op: "generate", Err: errors.New("connection reset")}
	gen := &scriptedGenerator{outcomes: map[string]scriptedOutcome{
		sentence.ShapeSubjectVerbObject: {err: transport},
	}}
	p := New(gen, store)

	_, err := p.Translate(context.Background(), "I sleep.")
	var trErr *TranslationError
	require.ErrorAs(t, err, &trErr)
	// No fallback after a transport failure.
	assert.Len(t, trErr.Attempts, 1)
	assert.ErrorIs(t, err, transport)
	assert.Equal(t, int64(1), gen.calls.Load())
}

func TestTranslateBackTranslationSuccess(t *testing.T) {
	store := vocab.NewStore()
	p := New(agent.NewMockAgent(store), store,
		WithBackTranslator(&scriptedBackTranslator{text: "I sleep."}))

	res, err := p.Translate(context.Background(), "I sleep.")
	require.NoError(t, err)
	assert.Equal(t, "I sleep.", res.BackTranslation)
	assert.NoError(t, res.BackTranslationErr)
}

func TestTranslateBackTranslationFailureIsNonFatal(t *testing.T) {
	store := vocab.NewStore()
	btErr := errors.New("quota exceeded")
	p := New(agent.NewMockAgent(store), store,
		WithBackTranslator(&scriptedBackTranslator{err: btErr}))

	res, err := p.Translate(context.Background(), "I sleep.")
	require.NoError(t, err)
	assert.Equal(t, "nüü üwi-dü", res.Target)
	assert.Empty(t, res.BackTranslation)
	assert.ErrorIs(t, res.BackTranslationErr, btErr)
}

func TestTranslateCancelledContext(t *testing.T) {
	store := vocab.NewStore()
	p := New(agent.NewMockAgent(store), store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Translate(ctx, "I sleep.")
	var trErr *TranslationError
	require.ErrorAs(t, err, &trErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranslateConcurrentPrefersShapePriority(t *testing.T) {
	store := vocab.NewStore()
	// Both shapes succeed, the simpler one faster. Priority order must
	// still win.
	mock := agent.NewMockAgent(store)
	svo, err := mock.GenerateSentence(context.Background(), "I will eat the rice.", agent.SubjectVerbObjectShape(store))
	require.NoError(t, err)
	sv, err := mock.GenerateSentence(context.Background(), "I eat.", agent.SubjectVerbShape(store))
	require.NoError(t, err)

	gen := &scriptedGenerator{outcomes: map[string]scriptedOutcome{
		sentence.ShapeSubjectVerbObject: {sentence: svo, delay: 30 * time.Millisecond},
		sentence.ShapeSubjectVerb:       {sentence: sv},
	}}
	p := New(gen, store, WithConcurrentCandidates())

	res, err := p.Translate(context.Background(), "I will eat the rice.")
	require.NoError(t, err)
	assert.Equal(t, sentence.ShapeSubjectVerbObject, res.Shape)
	assert.Equal(t, "nüü wai-noka u-düka-wei", res.Target)
	assert.Equal(t, int64(2), gen.calls.Load())
}

func TestTranslateConcurrentAllFail(t *testing.T) {
	store := vocab.NewStore()
	gen := &scriptedGenerator{outcomes: map[string]scriptedOutcome{}}
	p := New(gen, store, WithConcurrentCandidates())

	_, err := p.Translate(context.Background(), "???")
	var trErr *TranslationError
	require.ErrorAs(t, err, &trErr)
	assert.Len(t, trErr.Attempts, 2)
}

func TestTranslateNoShapes(t *testing.T) {
	store := vocab.NewStore()
	p := New(agent.NewMockAgent(store), store, WithShapes())

	_, err := p.Translate(context.Background(), "I sleep.")
	var trErr *TranslationError
	require.ErrorAs(t, err, &trErr)
}
