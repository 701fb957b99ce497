package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"

	"github.com/deanrtaylor1/gosource/lexer"
	"github.com/deanrtaylor1/gosource/textmodel"
	"github.com/deanrtaylor1/gosource/util"
)

// FeatureLabel returns the display name of a feature, "word_lengths" -> "Word Lengths"
func FeatureLabel(f textmodel.Feature) string {
	return cases.Title(language.English).String(strings.ReplaceAll(f.String(), "_", " "))
}

// ShouldColorize reports whether writer is a terminal. Only writers backed by a
// file descriptor, like os.Stdout, can be.
func ShouldColorize(writer io.Writer) bool {
	f, ok := writer.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func paint(s, color string, colorize bool) string {
	if !colorize {
		return s
	}
	return color + s + util.TerminalReset
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}

// Classification renders both score vectors, the per-feature winner and the verdict
func Classification(c textmodel.Classification, colorize bool) string {
	header := table.Row{"Feature", "Scores for " + c.SourceA, "Scores for " + c.SourceB, "Closer To"}

	rows := make([]table.Row, 0, len(textmodel.Features)+1)
	for _, f := range textmodel.Features {
		a, b := c.ScoresA[f], c.ScoresB[f]
		closer := "tie"
		switch {
		case a > b:
			closer = c.SourceA
		case b > a:
			closer = c.SourceB
		}
		rows = append(rows, table.Row{FeatureLabel(f), formatScore(a), formatScore(b), closer})
	}
	rows = append(rows, table.Row{
		"Total",
		formatScore(floats.Sum(c.ScoresA[:])),
		formatScore(floats.Sum(c.ScoresB[:])),
		fmt.Sprintf("%d - %d", c.TallyA, c.TallyB),
	})

	var b strings.Builder
	b.WriteString(renderTable(header, rows, 2, 3))
	b.WriteString("\n")

	verdictColor := util.TerminalGreen
	if c.Decision == textmodel.Ambiguous {
		verdictColor = util.TerminalYellow
	}
	b.WriteString(paint(c.String(), verdictColor, colorize))
	b.WriteString("\n")
	return b.String()
}

// Summary renders the table sizes of a model and its top most frequent words
func Summary(m *textmodel.Model, top int, colorize bool) string {
	var b strings.Builder
	b.WriteString(paint("text model name: "+m.Name, util.TerminalCyan, colorize))
	b.WriteString("\n")

	sizes := []table.Row{
		{FeatureLabel(textmodel.FeatureWords), len(m.Words)},
		{FeatureLabel(textmodel.FeatureWordLengths), len(m.WordLengths)},
		{FeatureLabel(textmodel.FeatureStems), len(m.Stems)},
		{FeatureLabel(textmodel.FeatureSentenceLengths), len(m.SentenceLengths)},
		{FeatureLabel(textmodel.FeatureConjunctions), len(m.Conjunctions)},
	}
	b.WriteString(renderTable(table.Row{"Table", "Entries"}, sizes, 2))
	b.WriteString("\n")

	stats := lexer.MapToSortedSlice(m.Words)
	if len(stats) > top {
		stats = stats[:top]
	}
	if len(stats) > 0 {
		rows := make([]table.Row, 0, len(stats))
		for _, s := range stats {
			rows = append(rows, table.Row{s.Token(), s.Freq()})
		}
		b.WriteString(renderTable(table.Row{"Word", "Count"}, rows, 2))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTable draws rows under header with the columns numbered in right
// (1-based) right aligned
func renderTable(header table.Row, rows []table.Row, right ...int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	tw.AppendRows(rows)

	configs := make([]table.ColumnConfig, 0, len(right))
	for _, n := range right {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
