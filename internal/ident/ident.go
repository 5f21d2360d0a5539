// Package ident produces the string identifiers assigned to stored records.
//
// Identifiers are nanosecond timestamps, optionally prefixed with a
// namespace tag (e.g. "trx_", "cat_"). A generator never returns the
// same numeric part twice: if the clock has not advanced since the last
// call, the previous value is bumped by one so records created in the
// same instant still get distinct, sortable ids.
package ident

import (
	"strconv"
	"sync"
	"time"
)

const (
	// TransactionPrefix namespaces cashflow transaction ids.
	TransactionPrefix = "trx_"
	// CategoryPrefix namespaces cashflow category ids.
	CategoryPrefix = "cat_"
)

type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Next returns a fresh identifier with the given namespace prefix.
// An empty prefix yields a bare numeric id.
func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ns := g.now().UnixNano()
	if ns <= g.last {
		ns = g.last + 1
	}
	g.last = ns

	return prefix + strconv.FormatInt(ns, 10)
}
