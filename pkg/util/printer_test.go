package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablePreservesRowOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Table("Balances", [][2]string{
		{"first", "1"},
		{"second", "2"},
		{"third", "3"},
	})

	out := buf.String()
	assert.Contains(t, out, "Balances")
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	third := strings.Index(out, "third")
	assert.True(t, first >= 0 && first < second && second < third, "rows must print in append order")
}

func TestTxSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.TxSummary("matchOrders receipt", "0xabc", 42, 210000, 1)

	out := buf.String()
	assert.Contains(t, out, "matchOrders receipt")
	assert.Contains(t, out, "0xabc")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "210000")
}
