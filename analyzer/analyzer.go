// Package analyzer runs the syntax front end over a batch of source files.
//
// Every file is processed in isolation: it is read, tokenized and parsed,
// and only if all of this succeeds its markup is persisted. A failing file
// never leaves a partial output file behind and never prevents other files
// from being analyzed unless the batch is configured to stop early.
package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/c0depwn/jackfront/config"
	"github.com/c0depwn/jackfront/lexer"
	"github.com/c0depwn/jackfront/logging"
	"github.com/c0depwn/jackfront/parser"
	"github.com/c0depwn/jackfront/tree"
)

// TokenSuffix is appended to the name of the token dump, Main.jack produces MainT.xml.
const TokenSuffix = "T"

// Options control the analysis of a batch.
type Options struct {
	// OutputDir receives the output files, empty means next to each source.
	OutputDir string
	Extension string
	Indent    string
	PadLeaves bool
	// Tokens additionally writes the flat token dump of every file.
	Tokens bool

	Workers         int
	ContinueOnError bool

	// ParserOptions are passed to every parse.
	ParserOptions []parser.Option
}

// OptionsFromConfig derives the batch options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		OutputDir:       cfg.Output.Dir,
		Extension:       cfg.Output.Extension,
		Indent:          cfg.Output.Indent,
		PadLeaves:       cfg.Output.PadLeaves,
		Tokens:          cfg.Output.Tokens,
		Workers:         cfg.Batch.Workers,
		ContinueOnError: cfg.Batch.ContinueOnError,
	}
}

// DefaultOptions are the options of the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// Analyzer turns source files into markup files.
type Analyzer struct {
	opts Options
	log  *slog.Logger
}

// New creates an Analyzer, a nil logger discards all records.
func New(opts Options, log *slog.Logger) *Analyzer {
	if opts.Extension == "" {
		opts.Extension = ".xml"
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Analyzer{opts: opts, log: log}
}

// Result is the outcome of analyzing a single file.
type Result struct {
	Source      string        `yaml:"source"`
	Status      Status        `yaml:"status"`
	Output      string        `yaml:"output,omitempty"`
	TokenOutput string        `yaml:"token_output,omitempty"`
	Tokens      int           `yaml:"tokens"`
	Position    string        `yaml:"position,omitempty"`
	Message     string        `yaml:"error,omitempty"`
	Duration    time.Duration `yaml:"duration"`
	// Err is the cause of a failure, nil for StatusOK.
	Err error `yaml:"-"`
}

// OutputPaths returns where the markup and the token dump of source are written.
func (a *Analyzer) OutputPaths(source string) (xml, tokens string) {
	dir := a.opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(source)
	}
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))

	return filepath.Join(dir, name+a.opts.Extension),
		filepath.Join(dir, name+TokenSuffix+a.opts.Extension)
}

// AnalyzeFile processes a single source file.
func (a *Analyzer) AnalyzeFile(ctx context.Context, source string) Result {
	start := time.Now()
	res := Result{Source: source}

	if err := ctx.Err(); err != nil {
		res.Status = StatusSkipped
		res.Message = err.Error()
		return res
	}

	n, err := a.analyze(source, &res)
	res.Tokens = n
	res.Duration = time.Since(start)

	status, pos := classify(err)
	res.Status = status
	if err != nil {
		res.Err = err
		res.Message = err.Error()
		res.Output, res.TokenOutput = "", ""
	}
	if pos != nil {
		res.Position = pos.String()
	}

	a.logResult(res)
	return res
}

// analyze runs the pipeline for source and returns the number of tokens.
func (a *Analyzer) analyze(source string, res *Result) (int, error) {
	src, err := os.ReadFile(source)
	if err != nil {
		return 0, &IOError{Op: "read", Path: source, Err: err}
	}

	tokens, err := lexer.TokenizeString(string(src))
	if err != nil {
		return 0, err
	}

	rec := tree.NewRecorder()
	if err := parser.ParseFile(tokens, rec, a.opts.ParserOptions...); err != nil {
		return len(tokens), err
	}
	if err := rec.Balanced(); err != nil {
		return len(tokens), fmt.Errorf("unbalanced parse of '%s': %w", source, err)
	}

	markup, err := a.render(rec.Replay)
	if err != nil {
		return len(tokens), err
	}

	var dump []byte
	if a.opts.Tokens {
		dump, err = a.render(func(e tree.Emitter) error {
			return tree.EmitTokens(e, tokens)
		})
		if err != nil {
			return len(tokens), err
		}
	}

	xmlPath, tokensPath := a.OutputPaths(source)
	if err := writeFile(xmlPath, markup); err != nil {
		return len(tokens), err
	}
	res.Output = xmlPath

	if a.opts.Tokens {
		if err := writeFile(tokensPath, dump); err != nil {
			_ = os.Remove(xmlPath)
			return len(tokens), err
		}
		res.TokenOutput = tokensPath
	}

	return len(tokens), nil
}

// render drives a fresh XMLWriter with emit and returns the complete markup.
func (a *Analyzer) render(emit func(tree.Emitter) error) ([]byte, error) {
	var buf bytes.Buffer

	x := tree.NewXMLWriter(&buf, tree.WithIndent(a.opts.Indent), tree.WithPadding(a.opts.PadLeaves))
	if err := emit(x); err != nil {
		return nil, err
	}
	if err := x.Finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFile replaces path with data, readers never observe a partially written file.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "create directory", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (a *Analyzer) logResult(res Result) {
	attrs := []any{
		slog.String("file", res.Source),
		slog.String("status", string(res.Status)),
		slog.Int("tokens", res.Tokens),
		slog.Duration("duration", res.Duration),
	}

	if res.Status == StatusOK {
		a.log.Debug("analyzed file", append(attrs, slog.String("output", res.Output))...)
		return
	}
	if res.Position != "" {
		attrs = append(attrs, slog.String("position", res.Position))
	}
	a.log.Warn("analysis failed", append(attrs, slog.Any("error", res.Err))...)
}
