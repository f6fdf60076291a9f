package driver

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"rpncalc/internal/eval"
)

// LineResult holds the outcome of one expression line in a batch file.
type LineResult struct {
	Line  string // Исходная строка выражения
	Value float64
	Err   error
}

// FileResult holds the outcomes for one batch file.
type FileResult struct {
	Path  string
	Lines []LineResult
	// Err is set when the file itself could not be read.
	Err error
}

// EvalFiles evaluates expression files in parallel, one worker per file.
// Every file gets its own calculator, so answer registers do not leak
// between files; lines within a file run in order and share the
// register. jobs <= 0 means GOMAXPROCS.
func EvalFiles(ctx context.Context, paths []string, jobs int) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = evalFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func evalFile(path string) FileResult {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	res := FileResult{Path: path}
	calc := eval.New()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lr := LineResult{Line: line}
		out, err := EvalExpr(calc, line)
		switch {
		case err != nil:
			lr.Err = err
		case len(out.Stack) > 0:
			lr.Value = out.Stack[len(out.Stack)-1]
		}
		res.Lines = append(res.Lines, lr)
	}
	if err := sc.Err(); err != nil {
		res.Err = err
	}
	return res
}
