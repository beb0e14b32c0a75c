package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yaduha/ovp/internal/prompt"
	"github.com/yaduha/ovp/internal/sentence"
	"github.com/yaduha/ovp/internal/vocab"
)

const defaultModel = "gemini-2.5-flash-preview-09-2025"

// GeminiAgent implements both collaborator roles against the Gemini API.
// A fresh GenerativeModel is built per request: model configuration is
// per-call state (system instruction, response type), and requests may run
// concurrently under the pipeline's concurrent candidate mode.
type GeminiAgent struct {
	client    *genai.Client
	modelName string
	store     *vocab.Store
}

// NewGeminiAgent initializes the Gemini client. If the API key is empty,
// the caller receives a nil agent and no error so that commands can decide
// how to handle missing configuration.
func NewGeminiAgent(ctx context.Context, apiKey, model string, store *vocab.Store) (*GeminiAgent, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiAgent{
		client:    client,
		modelName: model,
		store:     store,
	}, nil
}

// Close releases underlying resources.
func (a *GeminiAgent) Close() {
	if a == nil || a.client == nil {
		return
	}
	if err := a.client.Close(); err != nil {
		log.Printf("warning: failed to close Gemini client: %v", err)
	}
}

// GenerateSentence asks the model to populate the given candidate shape
// from the English source sentence.
func (a *GeminiAgent) GenerateSentence(ctx context.Context, source string, shape CandidateShape) (sentence.Sentence, error) {
	if a == nil || a.client == nil {
		return nil, &CollaboratorError{Op: "generate", Err: fmt.Errorf("agent is not initialized")}
	}

	system, err := prompt.NewBuilder(a.store).WithVocabulary().WithExamples(shape.Name).System()
	if err != nil {
		return nil, fmt.Errorf("failed to build system prompt: %w", err)
	}
	system += "\n# Output Format\n" +
		"Respond ONLY with a single minified JSON object matching this structure. " +
		"Do not include markdown ticks, \"json\", or any other conversational text.\n" +
		shape.SchemaHint + "\n"

	m := a.client.GenerativeModel(a.modelName)
	m.ResponseMIMEType = "application/json"
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	userPrompt := fmt.Sprintf("English: %q", source)
	raw, err := a.generate(ctx, m, userPrompt)
	if err != nil {
		return nil, err
	}

	log.Printf("generation agent raw response: %s", raw)
	return shape.Decode([]byte(stripFences(raw)))
}

// BackTranslate asks the model for a free English rendering of a target
// sentence.
func (a *GeminiAgent) BackTranslate(ctx context.Context, target string) (string, error) {
	if a == nil || a.client == nil {
		return "", &CollaboratorError{Op: "back-translate", Err: fmt.Errorf("agent is not initialized")}
	}

	// Free English text, no system instruction and no JSON contract.
	m := a.client.GenerativeModel(a.modelName)
	raw, err := a.generate(ctx, m, prompt.BackTranslation(target))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stripFences(raw)), nil
}

func (a *GeminiAgent) generate(ctx context.Context, m *genai.GenerativeModel, userPrompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", &CollaboratorError{Op: "generate-content", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &CollaboratorError{Op: "generate-content", Err: fmt.Errorf("empty response: %v", resp)}
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", &CollaboratorError{Op: "generate-content", Err: fmt.Errorf("unexpected response part type %T", part)}
	}
	return string(text), nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// in one anyway.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
