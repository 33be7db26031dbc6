package sqlite

import "strings"

// Predicate accumulates AND-ed conditions with positional "?" args.
// The zero value matches every row.
type Predicate struct {
	conds []string
	args  []any
}

// Equal adds "col = v".
func (p *Predicate) Equal(col string, v any) *Predicate {
	return p.add(col+" = ?", v)
}

// AtLeast adds "col >= v".
func (p *Predicate) AtLeast(col string, v any) *Predicate {
	return p.add(col+" >= ?", v)
}

// AtMost adds "col <= v".
func (p *Predicate) AtMost(col string, v any) *Predicate {
	return p.add(col+" <= ?", v)
}

// Contains adds a case-sensitive substring match. LIKE folds ASCII case in SQLite, instr does not.
func (p *Predicate) Contains(col string, sub string) *Predicate {
	return p.add("instr("+col+", ?) > 0", sub)
}

func (p *Predicate) add(cond string, arg any) *Predicate {
	p.conds = append(p.conds, cond)
	p.args = append(p.args, arg)
	return p
}

// Where renders "WHERE ..." or an empty string when there are no conditions.
func (p *Predicate) Where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(p.conds, " AND ")
}

// Args returns the bound arguments in condition order.
func (p *Predicate) Args() []any {
	return append([]any(nil), p.args...)
}

// LimitOffset maps a non-positive limit to SQLite's "no limit" and clamps offset at 0.
func LimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = -1
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
