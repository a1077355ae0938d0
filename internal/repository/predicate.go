package repository

import (
	"strconv"
	"strings"
)

// column is a trusted SQL identifier. Only repository code constructs them.
type column string

const (
	colBusinessStatus column = "business_status"
	colProvince       column = "province"
	colCity           column = "city"
	colDistrict       column = "district"
	colBusinessName   column = "business_name"
	colLatitude       column = "latitude"
	colLongitude      column = "longitude"
	colReferenceDate  column = "reference_date"
)

// predicate builds a parameterized WHERE clause. Values are always bound as
// arguments; only column identifiers are spliced into the SQL text.
type predicate struct {
	conds []string
	args  []any
}

func where() *predicate {
	return &predicate{}
}

// arg binds v and returns its placeholder.
func (p *predicate) arg(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

func (p *predicate) eq(col column, v any) *predicate {
	p.conds = append(p.conds, string(col)+" = "+p.arg(v))
	return p
}

// eqIfSet adds col = v unless v is empty.
func (p *predicate) eqIfSet(col column, v string) *predicate {
	if v == "" {
		return p
	}
	return p.eq(col, v)
}

// containsIfSet adds a case-insensitive substring match unless v is empty.
func (p *predicate) containsIfSet(col column, v string) *predicate {
	if v == "" {
		return p
	}
	p.conds = append(p.conds, string(col)+" ILIKE '%' || "+p.arg(escapeLike(v))+" || '%'")
	return p
}

func (p *predicate) between(col column, lo, hi any) *predicate {
	p.conds = append(p.conds, string(col)+" BETWEEN "+p.arg(lo)+" AND "+p.arg(hi))
	return p
}

// or adds the conditions built by fn as one parenthesized OR group.
func (p *predicate) or(fn func(o *predicate)) *predicate {
	sub := &predicate{args: p.args}
	fn(sub)
	p.args = sub.args
	if len(sub.conds) > 0 {
		p.conds = append(p.conds, "("+strings.Join(sub.conds, " OR ")+")")
	}
	return p
}

// sql renders the WHERE clause, or an empty string when there are no conditions.
func (p *predicate) sql() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
