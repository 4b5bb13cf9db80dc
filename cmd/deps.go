package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abstractlab/yayi/internal/commentary"
	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/llm"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/store"
)

// deps is what every quiz-running command needs.
type deps struct {
	catalog      *quiz.Catalog
	catalogLabel string
	evaluator    *flow.Evaluator
	store        *store.Store // nil unless the event log is enabled
}

func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
}

// loadCatalog returns the catalog named by --catalog, or the built-in one.
func loadCatalog(cmd *cobra.Command) (*quiz.Catalog, string, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return quiz.Default(), "built-in catalog", nil
	}
	c, err := quiz.LoadCatalogFile(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

// openStore opens the event log when --db or YAYI_DB is set. It returns a
// nil store otherwise.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	flagValue, _ := cmd.Flags().GetString("db")
	path, ok, err := store.ResolveDBPath(flagValue)
	if err != nil || !ok {
		return nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// requireStore is openStore for commands that cannot work without one.
func requireStore(cmd *cobra.Command) (*store.Store, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("no event log: pass --db or set YAYI_DB")
	}
	return st, nil
}

// buildDeps loads the catalog, opens the optional event log, and wires the
// commentary provider. A missing provider is not an error; commentary then
// falls back to the fixed text.
func buildDeps(cmd *cobra.Command, withCommentary bool) (*deps, error) {
	c, label, err := loadCatalog(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{catalog: c, catalogLabel: label}

	if !withCommentary {
		d.evaluator = flow.NewEvaluator(c, nil)
		return d, nil
	}

	d.store, err = openStore(cmd)
	if err != nil {
		return nil, err
	}

	var repo store.EventRepo
	if d.store != nil {
		repo = d.store.EventRepo()
	}

	var commentator flow.Commentator
	provider, err := llm.NewProviderFromEnv(cmd.Context(), repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Commentary will use the offline fallback.")
	} else {
		commentator = commentary.New(provider, commentary.DefaultConfig())
	}

	d.evaluator = flow.NewEvaluator(c, commentator)
	return d, nil
}
