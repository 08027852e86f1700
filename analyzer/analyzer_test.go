package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/c0depwn/jackfront/lexer"
	"github.com/c0depwn/jackfront/parser"
)

const (
	emptyClass = "class Main { }"

	emptyClassXML = `<class>
  <keyword> class </keyword>
  <identifier> Main </identifier>
  <symbol> { </symbol>
  <symbol> } </symbol>
</class>
`

	emptyClassTokens = `<tokens>
  <keyword> class </keyword>
  <identifier> Main </identifier>
  <symbol> { </symbol>
  <symbol> } </symbol>
</tokens>
`
)

// writeSources creates the given files in a new temporary directory.
func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected %s not to exist, got %v", path, err)
	}
}

func TestDiscover(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"Main.jack":  emptyClass,
		"Game.jack":  emptyClass,
		"notes.txt":  "",
		"Main.xml":   "",
		"Ball.jack~": "",
	})
	if err := os.Mkdir(filepath.Join(dir, "Nested.jack"), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Run("directory", func(t *testing.T) {
		got, err := Discover(dir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		expect := []string{filepath.Join(dir, "Game.jack"), filepath.Join(dir, "Main.jack")}
		if !reflect.DeepEqual(expect, got) {
			t.Fatalf("expected %v, got %v", expect, got)
		}
	})

	t.Run("file and duplicates", func(t *testing.T) {
		main := filepath.Join(dir, "Main.jack")
		got, err := Discover(main, dir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		expect := []string{main, filepath.Join(dir, "Game.jack")}
		if !reflect.DeepEqual(expect, got) {
			t.Fatalf("expected %v, got %v", expect, got)
		}
	})

	errorCases := []struct {
		name  string
		paths []string
	}{
		{name: "not a source", paths: []string{filepath.Join(dir, "notes.txt")}},
		{name: "missing", paths: []string{filepath.Join(dir, "Missing.jack")}},
		{name: "empty directory", paths: []string{t.TempDir()}},
		{name: "nothing", paths: nil},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Discover(tc.paths...); err == nil {
				t.Fatal("expected error but got none")
			}
		})
	}
}

func TestAnalyzeFile(t *testing.T) {
	dir := writeSources(t, map[string]string{"Main.jack": "// entry\n" + emptyClass})

	opts := DefaultOptions()
	opts.Tokens = true

	res := New(opts, nil).AnalyzeFile(context.Background(), filepath.Join(dir, "Main.jack"))
	if res.Status != StatusOK {
		t.Fatalf("expected %s, got %s: %v", StatusOK, res.Status, res.Err)
	}
	if res.Tokens != 4 {
		t.Fatalf("expected 4 tokens, got %d", res.Tokens)
	}

	if res.Output != filepath.Join(dir, "Main.xml") {
		t.Fatalf("unexpected output path %s", res.Output)
	}
	if got := readFile(t, res.Output); got != emptyClassXML {
		t.Fatalf("unexpected markup:\n%s", got)
	}

	if res.TokenOutput != filepath.Join(dir, "MainT.xml") {
		t.Fatalf("unexpected token output path %s", res.TokenOutput)
	}
	if got := readFile(t, res.TokenOutput); got != emptyClassTokens {
		t.Fatalf("unexpected token dump:\n%s", got)
	}
}

func TestAnalyzeFile_outputDir(t *testing.T) {
	dir := writeSources(t, map[string]string{"Main.jack": emptyClass})
	out := filepath.Join(t.TempDir(), "build", "xml")

	opts := DefaultOptions()
	opts.OutputDir = out
	opts.Extension = ".out"
	opts.Indent = "\t"
	opts.PadLeaves = false

	res := New(opts, nil).AnalyzeFile(context.Background(), filepath.Join(dir, "Main.jack"))
	if res.Status != StatusOK {
		t.Fatalf("expected %s, got %s: %v", StatusOK, res.Status, res.Err)
	}

	expect := "<class>\n\t<keyword>class</keyword>\n\t<identifier>Main</identifier>\n\t<symbol>{</symbol>\n\t<symbol>}</symbol>\n</class>\n"
	if got := readFile(t, filepath.Join(out, "Main.out")); got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
	assertNotExist(t, filepath.Join(dir, "Main.out"))
	assertNotExist(t, filepath.Join(out, "MainT.out"))
}

func TestAnalyzeFile_failures(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"Lex.jack":    "class Lex {\n  field int x; # }",
		"Syntax.jack": "class Syntax {\n  function void f() {\n    let x = ;\n  }\n}",
		"Eof.jack":    "class Eof {",
		"Empty.jack":  "/** nothing */",
	})

	cases := []struct {
		name     string
		status   Status
		position string
		target   error
	}{
		{name: "Lex", status: StatusLexError, position: "2:16", target: lexer.ErrUnrecognizedCharacter},
		{name: "Syntax", status: StatusSyntaxError, position: "3:13", target: parser.ErrUnexpectedToken},
		{name: "Eof", status: StatusSyntaxError, position: "1:11", target: parser.ErrUnexpectedEndOfInput},
		{name: "Empty", status: StatusSyntaxError, position: "1:1", target: parser.ErrUnexpectedEndOfInput},
		{name: "Missing", status: StatusIOError, target: os.ErrNotExist},
	}

	opts := DefaultOptions()
	opts.Tokens = true
	a := New(opts, nil)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := a.AnalyzeFile(context.Background(), filepath.Join(dir, tc.name+".jack"))

			if res.Status != tc.status {
				t.Fatalf("expected %s, got %s: %v", tc.status, res.Status, res.Err)
			}
			if res.Position != tc.position {
				t.Fatalf("expected position %q, got %q", tc.position, res.Position)
			}
			if !errors.Is(res.Err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, res.Err)
			}
			if res.Message == "" || res.Output != "" {
				t.Fatalf("unexpected result %+v", res)
			}

			// no partial artifacts
			assertNotExist(t, filepath.Join(dir, tc.name+".xml"))
			assertNotExist(t, filepath.Join(dir, tc.name+"T.xml"))
		})
	}
}

func TestAnalyzeFile_cancelled(t *testing.T) {
	dir := writeSources(t, map[string]string{"Main.jack": emptyClass})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := New(DefaultOptions(), nil).AnalyzeFile(ctx, filepath.Join(dir, "Main.jack"))
	if res.Status != StatusSkipped {
		t.Fatalf("expected %s, got %s", StatusSkipped, res.Status)
	}
	assertNotExist(t, filepath.Join(dir, "Main.xml"))
}

// batch creates the files A.jack to E.jack, those listed in bad contain a syntax error.
func batch(t *testing.T, bad ...string) []string {
	t.Helper()

	files := make(map[string]string)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		files[name+".jack"] = fmt.Sprintf("class %s { }", name)
	}
	for _, name := range bad {
		files[name+".jack"] = fmt.Sprintf("class %s { field }", name)
	}

	sources, err := Discover(writeSources(t, files))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return sources
}

func statuses(report *Report) []Status {
	s := make([]Status, len(report.Files))
	for i, res := range report.Files {
		s[i] = res.Status
	}
	return s
}

func TestRun(t *testing.T) {
	cases := []struct {
		name            string
		workers         int
		continueOnError bool
		bad             []string
		expect          []Status
	}{
		{
			name:            "all ok",
			workers:         1,
			continueOnError: true,
			expect:          []Status{StatusOK, StatusOK, StatusOK, StatusOK, StatusOK},
		},
		{
			name:            "continue after failure",
			workers:         1,
			continueOnError: true,
			bad:             []string{"B", "D"},
			expect:          []Status{StatusOK, StatusSyntaxError, StatusOK, StatusSyntaxError, StatusOK},
		},
		{
			name:            "parallel",
			workers:         4,
			continueOnError: true,
			bad:             []string{"C"},
			expect:          []Status{StatusOK, StatusOK, StatusSyntaxError, StatusOK, StatusOK},
		},
		{
			name:            "stop after failure",
			workers:         1,
			continueOnError: false,
			bad:             []string{"B"},
			expect:          []Status{StatusOK, StatusSyntaxError, StatusSkipped, StatusSkipped, StatusSkipped},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Workers = tc.workers
			opts.ContinueOnError = tc.continueOnError

			report, err := New(opts, nil).Run(context.Background(), batch(t, tc.bad...))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got := statuses(report); !reflect.DeepEqual(tc.expect, got) {
				t.Fatalf("expected %v, got %v", tc.expect, got)
			}
			if report.Failed() != (len(tc.bad) > 0) {
				t.Fatalf("expected failed to be %v", len(tc.bad) > 0)
			}
			if len(report.Failures()) != len(tc.bad) {
				t.Fatalf("expected %d failures, got %d", len(tc.bad), len(report.Failures()))
			}
			if report.RunID == "" {
				t.Fatal("expected a run id")
			}
			if report.Totals.Files != len(tc.expect) || report.Totals.OK != len(report.Outputs()) {
				t.Fatalf("unexpected totals %+v", report.Totals)
			}
		})
	}
}

func TestRun_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(DefaultOptions(), nil).Run(ctx, batch(t))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected %v, got %v", context.Canceled, err)
	}
	if report.Totals.Skipped != 5 || report.Failed() {
		t.Fatalf("unexpected totals %+v", report.Totals)
	}
}

func TestReport_WriteYAML(t *testing.T) {
	report, err := New(DefaultOptions(), nil).Run(context.Background(), batch(t, "E"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var out bytes.Buffer
	if err := report.WriteYAML(&out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded struct {
		RunID  string `yaml:"run_id"`
		Totals Totals `yaml:"totals"`
		Files  []struct {
			Source   string `yaml:"source"`
			Status   string `yaml:"status"`
			Position string `yaml:"position"`
			Error    string `yaml:"error"`
		} `yaml:"files"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid YAML, got %v:\n%s", err, out.String())
	}

	if decoded.RunID != report.RunID {
		t.Fatalf("expected run id %s, got %s", report.RunID, decoded.RunID)
	}
	if decoded.Totals != (Totals{Files: 5, OK: 4, Failed: 1}) {
		t.Fatalf("unexpected totals %+v", decoded.Totals)
	}

	last := decoded.Files[4]
	if last.Status != string(StatusSyntaxError) || last.Position != "1:17" || last.Error == "" {
		t.Fatalf("unexpected result %+v", last)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status Status
	}{
		{name: "nil", err: nil, status: StatusOK},
		{name: "lex", err: fmt.Errorf("wrapped: %w", &lexer.Error{Kind: lexer.IntegerOverflow}), status: StatusLexError},
		{name: "syntax", err: &parser.SyntaxError{Kind: parser.UnexpectedToken}, status: StatusSyntaxError},
		{name: "io", err: &IOError{Op: "read", Path: "x", Err: os.ErrPermission}, status: StatusIOError},
		{name: "other", err: errors.New("boom"), status: StatusInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got, _ := classify(tc.err); got != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, got)
			}
		})
	}
}
