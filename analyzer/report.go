package analyzer

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c0depwn/jackfront/pkg/slices"
)

// Report summarizes a batch.
type Report struct {
	RunID    string        `yaml:"run_id"`
	Started  time.Time     `yaml:"started"`
	Duration time.Duration `yaml:"duration"`
	Totals   Totals        `yaml:"totals"`
	Files    []Result      `yaml:"files"`
}

type Totals struct {
	Files   int `yaml:"files"`
	OK      int `yaml:"ok"`
	Failed  int `yaml:"failed"`
	Skipped int `yaml:"skipped"`
}

func totals(results []Result) Totals {
	return Totals{
		Files:   len(results),
		OK:      slices.Count(results, func(r Result) bool { return r.Status == StatusOK }),
		Failed:  slices.Count(results, func(r Result) bool { return r.Status.Failed() }),
		Skipped: slices.Count(results, func(r Result) bool { return r.Status == StatusSkipped }),
	}
}

// Failed reports whether any file of the batch failed.
func (r *Report) Failed() bool {
	return r.Totals.Failed > 0
}

// Failures returns the results of all failed files.
func (r *Report) Failures() []Result {
	return slices.Filter(r.Files, func(res Result) bool { return res.Status.Failed() })
}

// Outputs returns all written output files.
func (r *Report) Outputs() []string {
	ok := slices.Filter(r.Files, func(res Result) bool { return res.Status == StatusOK })
	return slices.Map(ok, func(res Result) string { return res.Output })
}

// Summary is a single line description of the totals.
func (r *Report) Summary() string {
	return fmt.Sprintf(
		"%d file(s): %d ok, %d failed, %d skipped in %s",
		r.Totals.Files, r.Totals.OK, r.Totals.Failed, r.Totals.Skipped, r.Duration.Round(time.Millisecond),
	)
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
