package util

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Printer renders the demo's console output: account lists, balance and
// allowance tables, transaction summaries. Rows print in the order they
// were appended.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Heading prints a section banner.
func (p *Printer) Heading(title string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// Table prints ordered rows of label/value pairs under a heading.
func (p *Printer) Table(title string, rows [][2]string) {
	p.Heading(title)
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	w.Flush()
}

// Accounts prints the resolved account roles in order.
func (p *Printer) Accounts(rows [][2]string) {
	p.Table("Accounts", rows)
}

// TxSummary prints the outcome of a mined transaction.
func (p *Printer) TxSummary(label, txHash string, blockNumber uint64, gasUsed uint64, status uint64) {
	p.Table(label, [][2]string{
		{"txHash", txHash},
		{"blockNumber", fmt.Sprintf("%d", blockNumber)},
		{"gasUsed", fmt.Sprintf("%d", gasUsed)},
		{"status", fmt.Sprintf("%d", status)},
	})
}
