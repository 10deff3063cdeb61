// internal/benchmark/report.go
package benchmark

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	modelColor = color.New(color.FgCyan, color.Bold)
	warnColor  = color.New(color.FgYellow)
)

// Printer renders Records as human-readable stat blocks.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// RunStats prints the stat block for a single benchmark run.
func (p *Printer) RunStats(rec Record) {
	p.stats(rec)
}

// AverageStats prints the stat block for a model's aggregate record.
func (p *Printer) AverageStats(rec Record) {
	fmt.Fprintf(p.out, "Average stats (%s):\n", rec.MessageContent)
	p.stats(rec)
}

// Warn prints a highlighted warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, warnColor.Sprintf("Warning: "+format, args...))
}

// stats renders the shared stat block. Rates with a zero divisor print n/a
// instead of invalidating the rest of the record.
func (p *Printer) stats(rec Record) {
	promptRate := formatRate(PromptRate(rec))
	genRate := formatRate(GenRate(rec))
	combinedRate := formatRate(CombinedRate(rec))

	fmt.Fprintln(p.out, "----------------------------------------------------")
	fmt.Fprintf(p.out, "        Model: %s\n", modelColor.Sprint(rec.Model))
	fmt.Fprintln(p.out, "        Performance Metrics:")
	fmt.Fprintf(p.out, "            Prompt Processing:  %s\n", promptRate)
	fmt.Fprintf(p.out, "            Generation Speed:   %s\n", genRate)
	fmt.Fprintf(p.out, "            Combined Speed:     %s\n", combinedRate)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "        Workload Stats:")
	fmt.Fprintf(p.out, "            Input Tokens:       %d\n", rec.PromptEvalCount)
	fmt.Fprintf(p.out, "            Generated Tokens:   %d\n", rec.EvalCount)
	fmt.Fprintf(p.out, "            Model Load Time:    %.2fs\n", nanosToSeconds(rec.LoadDuration))
	fmt.Fprintf(p.out, "            Processing Time:    %.2fs\n", nanosToSeconds(rec.PromptEvalDuration))
	fmt.Fprintf(p.out, "            Generation Time:    %.2fs\n", nanosToSeconds(rec.EvalDuration))
	fmt.Fprintf(p.out, "            Total Time:         %.2fs\n", nanosToSeconds(rec.TotalDuration))
	fmt.Fprintln(p.out, "----------------------------------------------------")
}

func formatRate(value float64, err error) string {
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f tokens/sec", value)
}
