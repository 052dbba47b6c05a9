// Package runner analyzes sets of SQL files concurrently and aggregates
// the results in a deterministic order.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlstyle/pkg/lexer"
	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

// StdinPath is the pseudo-path that reads source from standard input.
const StdinPath = "-"

// FileResult holds the outcome of analyzing a single file.
// Err is set for I/O failures and lex errors; such failures do not
// abort the rest of the run.
type FileResult struct {
	Path        string
	Source      string
	Tokens      []token.Token
	Diagnostics []lint.Diagnostic
	Err         error
}

// Runner drives lint analysis over multiple files.
type Runner struct {
	analyzer *lint.Analyzer
	workers  int

	// Stdin overrides the standard input source, for tests.
	Stdin io.Reader
}

// New creates a Runner using the given lint configuration.
func New(cfg *lint.Config) *Runner {
	return &Runner{
		analyzer: lint.NewAnalyzer(cfg),
		workers:  runtime.NumCPU(),
	}
}

// Run analyzes all paths and returns one result per path, sorted by path.
// The pseudo-path "-" reads from standard input.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := r.runFile(path)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Path < results[b].Path
	})
	return results, nil
}

func (r *Runner) runFile(path string) FileResult {
	res := FileResult{Path: path}

	src, err := r.readSource(path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}
	res.Source = src

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		res.Err = err
		return res
	}
	res.Tokens = tokens
	res.Diagnostics = r.analyzer.Analyze(tokens)
	return res
}

func (r *Runner) readSource(path string) (string, error) {
	if path == StdinPath {
		in := r.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// ExitCode maps aggregated results to the process exit code.
// Internal failures (unreadable files, lex errors) dominate, then the
// worst diagnostic severity: error yields 2, warning yields 1,
// info and hint yield 0.
func ExitCode(results []FileResult) int {
	code := 0
	for _, res := range results {
		if res.Err != nil {
			return 3
		}
		worst, ok := lint.WorstSeverity(res.Diagnostics)
		if !ok {
			continue
		}
		switch worst {
		case lint.SeverityError:
			code = max(code, 2)
		case lint.SeverityWarning:
			code = max(code, 1)
		}
	}
	return code
}
