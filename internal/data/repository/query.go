package repository

import (
	"fmt"
	"strings"
)

// whereBuilder collects AND-ed predicates and numbers their placeholders.
// Clauses are written with '?' which become $1, $2, ... in order of addition.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, args ...any) {
	var sb strings.Builder
	argIdx := 0
	for _, ch := range clause {
		if ch == '?' && argIdx < len(args) {
			w.args = append(w.args, args[argIdx])
			argIdx++
			sb.WriteString(fmt.Sprintf("$%d", len(w.args)))
			continue
		}
		sb.WriteRune(ch)
	}
	w.clauses = append(w.clauses, sb.String())
}

// addSearch matches pattern against every column with ILIKE.
func (w *whereBuilder) addSearch(term *string, columns ...string) {
	if term == nil || strings.TrimSpace(*term) == "" {
		return
	}
	pattern := "%" + strings.TrimSpace(*term) + "%"
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		parts[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	w.add("("+strings.Join(parts, " OR ")+")", args...)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the suffix plus full args.
func (w *whereBuilder) page(limit, offset int) (string, []any) {
	args := append(append([]any(nil), w.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)+1, len(w.args)+2), args
}

// priceBucket describes a named price or size band.
type priceBucket struct {
	clause string
	args   []any
}

var packagePriceBuckets = map[string]priceBucket{
	"budget": {"price < ?", []any{20000}},
	"mid":    {"price BETWEEN ? AND ?", []any{20000, 50000}},
	"luxury": {"price > ?", []any{50000}},
}

var packageDurationBuckets = map[string]priceBucket{
	"short":  {"duration BETWEEN ? AND ?", []any{1, 2}},
	"medium": {"duration BETWEEN ? AND ?", []any{3, 5}},
	"long":   {"duration >= ?", []any{6}},
}

var packageGuestBuckets = map[string]priceBucket{
	"couple": {"max_guests = ?", []any{2}},
	"family": {"max_guests BETWEEN ? AND ?", []any{3, 4}},
	"group":  {"max_guests >= ?", []any{5}},
}

var servicePriceBuckets = map[string]priceBucket{
	"budget":  {"price < ?", []any{1000}},
	"mid":     {"price BETWEEN ? AND ?", []any{1000, 2500}},
	"premium": {"price > ?", []any{2500}},
}

// addBucket applies the named band when it exists; unknown names are ignored.
func (w *whereBuilder) addBucket(buckets map[string]priceBucket, name *string) {
	if name == nil {
		return
	}
	if b, ok := buckets[*name]; ok {
		w.add(b.clause, b.args...)
	}
}
