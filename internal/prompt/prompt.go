// Package prompt assembles the system instructions handed to the
// translation collaborators: the vocabulary listing, the sentence structure
// descriptions, the fortis/lenis table, and optional worked examples.
package prompt

import (
	"fmt"
	"strings"

	"github.com/yaduha/ovp/internal/grammar"
	"github.com/yaduha/ovp/internal/sentence"
	"github.com/yaduha/ovp/internal/vocab"
)

const systemPrefix = "You are a translator that translates English sentences into Owens Valley Paiute. " +
	"Use the vocabulary and sentence structures available to translate the input sentence as best as possible. " +
	"It doesn't need to be perfect and you can leave English words untranslated if necessary.\n"

const toolUseInstruction = "You may also have access to tools that can help you produce a better translation. " +
	"Use these tools as needed. You can make one or many tool calls (in parallel and/or sequentially) " +
	"until you decide to respond.\n"

// The nominalized structures are described to the collaborator even though
// no renderer exists for them; they are prompt text only.
const sentenceStructure = "# Sentence Structure\n" +
	"## Simple Sentence Structure: \n" +
	"Subject-Object-Verb: [object noun]-[object suffix] [subject noun]-[subject suffix] [object pronoun]-[verb]-[verb tense]\n" +
	"Subject Pronoun-Object-Verb: [object noun]-[object suffix] [subject pronoun] [object pronoun]-[verb]-[verb tense]\n" +
	"Subject-Verb: [verb]-[verb tense] [subject noun]-[subject suffix]\n" +
	"## Verb Nominalization Sentence Structure: \n" +
	"Subject Nominalizer: [verb]-[verb nominalizer tense]-[subject suffix] [verb nominalizer]-[verb nominalizer tense]\n" +
	"Object Nominalizer: [verb]-[verb nominalizer tense]-[object suffix] [subject noun]-[subject suffix] [object pronoun]-[verb]-[verb tense]\n" +
	"Subject&Object Nominalizer: [verb]-[verb nominalizer tense]-[object suffix] [verb nominalizer]-[verb nominalizer tense]-[subject suffix] [subject noun]-[subject suffix] [object pronoun]-[verb]-[verb tense]\n"

// Builder accumulates the optional sections of a system prompt.
type Builder struct {
	store         *vocab.Store
	includeVocab  bool
	hasTools      bool
	exampleShapes []string
}

// NewBuilder creates a prompt builder over the given lexicon.
func NewBuilder(store *vocab.Store) *Builder {
	return &Builder{store: store}
}

// WithVocabulary includes the full vocabulary listing.
func (b *Builder) WithVocabulary() *Builder {
	b.includeVocab = true
	return b
}

// WithTools includes the tool-use instruction.
func (b *Builder) WithTools() *Builder {
	b.hasTools = true
	return b
}

// WithExamples includes worked examples for the given clause shapes.
func (b *Builder) WithExamples(shapes ...string) *Builder {
	b.exampleShapes = append(b.exampleShapes, shapes...)
	return b
}

// System assembles the system prompt.
func (b *Builder) System() (string, error) {
	var sb strings.Builder
	sb.WriteString(systemPrefix)

	if b.hasTools {
		sb.WriteString(toolUseInstruction)
	}
	if b.includeVocab {
		b.writeVocabulary(&sb)
	}
	sb.WriteString(sentenceStructure)
	writeLenisTable(&sb)

	for _, shape := range b.exampleShapes {
		for _, ex := range sentence.ExamplesForShape(shape) {
			target, err := ex.Sentence.Render(b.store)
			if err != nil {
				return "", fmt.Errorf("failed to render example %q: %w", ex.English, err)
			}
			sb.WriteString("\n# Example\n")
			sb.WriteString("English: " + ex.English + "\n")
			sb.WriteString("Owens Valley Paiute: " + target + "\n")
		}
	}

	return sb.String(), nil
}

func (b *Builder) writeVocabulary(sb *strings.Builder) {
	sb.WriteString("You use the following vocabulary to translate user input sentences from English to Owens Valley Paiute.\n")
	sb.WriteString("Use the vocabulary and sentence structures available to translate the input sentence as best as possible.\n")
	sb.WriteString("It doesn't need to be perfect and you can leave English words untranslated if necessary.\n")
	sb.WriteString("# Vocabulary\n")

	sections := []struct {
		title    string
		category vocab.Category
	}{
		{"## Nouns: \n", vocab.Nouns},
		{"## Transitive Verbs: \n", vocab.TransitiveVerbs},
		{"## Intransitive Verbs: \n", vocab.IntransitiveVerbs},
	}
	for _, section := range sections {
		sb.WriteString(section.title)
		for _, entry := range b.store.Entries(section.category) {
			sb.WriteString(entry.Target + ": " + entry.Lemma + "\n")
		}
	}
}

func writeLenisTable(sb *strings.Builder) {
	sb.WriteString("# Fortis/Lenis Transformations\n")
	pairs := grammar.LenisPairs()
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.Fortis+"->"+p.Lenis)
	}
	sb.WriteString(strings.Join(parts, ", ") + "\n")
}

// BackTranslation builds the prompt for the back-translation collaborator:
// given a rendered Owens Valley Paiute sentence, produce free English text.
func BackTranslation(target string) string {
	var sb strings.Builder
	sb.WriteString("You are a translator for the Owens Valley Paiute language. ")
	sb.WriteString("Translate the following Owens Valley Paiute sentence into natural English. ")
	sb.WriteString("Respond with the English translation only, no commentary.\n\n")
	sb.WriteString("Owens Valley Paiute: " + target + "\n")
	return sb.String()
}
