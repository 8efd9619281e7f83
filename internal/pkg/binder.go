package pkg

import "strconv"

// Binder accumulates positional bind values for a composed SQL statement
// and hands out PostgreSQL-style placeholders with a monotonically
// increasing index. All fragments of a composed statement must share one
// Binder, since their parameters are concatenated into a single
// parameter list for one prepared statement.
//
// The zero value is ready to use.
type Binder struct {
	args []any
}

// Bind appends v to the parameter list and returns its placeholder,
// e.g. "$3".
func (b *Binder) Bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// Args returns a copy of the accumulated parameter list in bind order.
func (b *Binder) Args() []any {
	out := make([]any, len(b.args))
	copy(out, b.args)
	return out
}

// Len returns the number of bound parameters, i.e. the index of the most
// recently issued placeholder.
func (b *Binder) Len() int {
	return len(b.args)
}
