package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/grammar"
	"github.com/yaduha/ovp/internal/vocab"
)

// RunVocab handles the 'vocab' command: it lists the lexicon, the lenis
// alternation table, or the kinship paradigm.
func RunVocab(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("vocab", flag.ExitOnError)
	category := fs.String("category", "", "Restrict listing to one category (nouns, transitive_verbs, intransitive_verbs)")
	lenis := fs.Bool("lenis", false, "Print the fortis/lenis consonant table")
	kinship := fs.Bool("kinship", false, "Print the kinship possession paradigm")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if *lenis {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FORTIS\tLENIS")
		for _, pair := range grammar.LenisPairs() {
			fmt.Fprintf(tw, "%s\t%s\n", pair.Fortis, pair.Lenis)
		}
		return tw.Flush()
	}

	if *kinship {
		prefixes := make(map[grammar.Person]string, 3)
		for _, p := range []grammar.Person{grammar.First, grammar.Second, grammar.Third} {
			prefix, err := p.PossessivePrefix()
			if err != nil {
				return err
			}
			prefixes[p] = prefix
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LEMMA\tUNPOSSESSED\tMY\tYOUR\tTHEIR\tTHEIR (PL)")
		for _, term := range vocab.KinshipTerms() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				term.Lemma,
				term.Unpossessed,
				term.Possessed(prefixes[grammar.First]),
				term.Possessed(prefixes[grammar.Second]),
				term.Possessed(prefixes[grammar.Third]),
				term.PossessedPlural(prefixes[grammar.Third]),
			)
		}
		return tw.Flush()
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	categories := vocab.Categories()
	if *category != "" {
		c := vocab.Category(*category)
		if !c.Valid() {
			return fmt.Errorf("unknown category %q", *category)
		}
		categories = []vocab.Category{c}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tLEMMA\tTARGET")
	for _, c := range categories {
		for _, entry := range store.Entries(c) {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c, entry.Lemma, entry.Target)
		}
	}
	return tw.Flush()
}
