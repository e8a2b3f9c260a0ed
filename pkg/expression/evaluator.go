package expression

import (
	"strconv"
	"strings"

	"github.com/go-scals/scals/pkg/state"
)

// Reader is the read-only state capability expressions evaluate against.
// Implementations may layer iteration bindings over a store, and may record
// every looked-up path for dependency tracking.
type Reader interface {
	Lookup(path string) (state.Value, bool)
}

// Snapshotter is an optional Reader extension that exposes the full visible
// state as plain Go data. It is only consulted when an expression falls
// through to an external Engine, which needs an environment rather than
// per-path lookups.
type Snapshotter interface {
	Snapshot() map[string]any
}

// Engine evaluates expressions the built-in grammar does not cover. The
// second result reports success; engines must not panic. A failed engine
// evaluation degrades to null like every other unresolved expression.
type Engine interface {
	Evaluate(src string, env map[string]any) (state.Value, bool)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithEngine installs a fallback engine for expressions outside the built-in
// grammar.
func WithEngine(e Engine) Option {
	return func(ev *Evaluator) {
		ev.engine = e
	}
}

// Evaluator performs template interpolation and small expression evaluation.
// It never fails: an unresolved reference degrades to an empty, false or null
// result, so a document with a typo still renders.
type Evaluator struct {
	engine Engine
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{}
	for _, opt := range opts {
		if opt != nil {
			opt(ev)
		}
	}
	return ev
}

// Interpolate replaces every non-nested "${expr}" span in template with the
// display string of the evaluated inner expression. Spans are spliced
// back-to-front so earlier offsets stay valid while replacing.
func (e *Evaluator) Interpolate(template string, r Reader) string {
	type span struct {
		start, end int
		inner      string
	}
	var spans []span
	for i := 0; i < len(template); {
		open := strings.Index(template[i:], "${")
		if open < 0 {
			break
		}
		open += i
		end := strings.IndexByte(template[open+2:], '}')
		if end < 0 {
			break
		}
		end += open + 2
		spans = append(spans, span{open, end + 1, template[open+2 : end]})
		i = end + 1
	}
	if len(spans) == 0 {
		return template
	}
	out := template
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		out = out[:sp.start] + e.Evaluate(sp.inner, r).Display() + out[sp.end:]
	}
	return out
}

// Evaluate resolves a single expression. Dispatch order: ternary, array
// member forms, bare path lookup, single +/- integer arithmetic, then the
// optional fallback engine. Anything unresolved is null, never an error.
func (e *Evaluator) Evaluate(expr string, r Reader) state.Value {
	s := strings.TrimSpace(expr)
	if s == "" {
		return state.Null()
	}
	if lit, ok := quotedLiteral(s); ok {
		return state.String(lit)
	}
	if cond, then, els, ok := splitTernary(s); ok {
		if e.condTruthy(cond, r) {
			return e.Evaluate(then, r)
		}
		return e.Evaluate(els, r)
	}
	if v, ok := e.arrayOp(s, r); ok {
		return v
	}
	if isPathExpr(s) {
		v, _ := r.Lookup(s)
		return v
	}
	if left, right, minus, ok := splitArith(s); ok {
		return e.arith(left, right, minus, r)
	}
	if strings.Contains(s, "${") {
		return state.String(e.Interpolate(s, r))
	}
	if e.engine != nil {
		if v, ok := e.engineEval(s, r); ok {
			return v
		}
	}
	return state.Null()
}

// condTruthy evaluates a ternary condition: a boolean path, a "!"-negated
// path, or an array predicate. Anything else is false.
func (e *Evaluator) condTruthy(cond string, r Reader) bool {
	cond = strings.TrimSpace(cond)
	if strings.HasPrefix(cond, "!") {
		return !e.condTruthy(cond[1:], r)
	}
	if v, ok := e.arrayOp(cond, r); ok {
		return v.Truthy()
	}
	v, _ := r.Lookup(cond)
	return v.Truthy()
}

// arrayOp handles the array member forms .count, .isEmpty, .first, .last and
// .contains(x). It claims the expression only when the base path resolves to
// an array, or to nothing at all (absence degrades: count 0, isEmpty true,
// first/last null, contains false). A present non-array base falls through so
// object fields named "first" or "count" still resolve as plain paths.
func (e *Evaluator) arrayOp(expr string, r Reader) (state.Value, bool) {
	op, base, arg := splitArrayOp(expr)
	if op == "" || !isPathExpr(base) {
		return state.Null(), false
	}
	v, ok := r.Lookup(base)
	if ok && v.Kind() != state.KindArray {
		return state.Null(), false
	}
	items := v.Items()
	switch op {
	case "count":
		return state.Int(int64(len(items))), true
	case "isEmpty":
		return state.Bool(len(items) == 0), true
	case "first":
		if len(items) == 0 {
			return state.Null(), true
		}
		return items[0], true
	case "last":
		if len(items) == 0 {
			return state.Null(), true
		}
		return items[len(items)-1], true
	case "contains":
		needle := e.containsArg(arg, r)
		for _, item := range items {
			if item.Equal(needle) {
				return state.Bool(true), true
			}
		}
		return state.Bool(false), true
	}
	return state.Null(), false
}

func (e *Evaluator) containsArg(arg string, r Reader) state.Value {
	arg = strings.TrimSpace(arg)
	if lit, ok := quotedLiteral(arg); ok {
		return state.String(lit)
	}
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return state.Int(i)
	}
	switch arg {
	case "true":
		return state.Bool(true)
	case "false":
		return state.Bool(false)
	}
	v, _ := r.Lookup(arg)
	return v
}

// arith evaluates "left + right" / "left - right" with integer operands.
// Each operand is interpolated first; a non-numeric operand that names a
// state path is looked up. When the right operand stays non-numeric the left
// operand is returned unchanged.
func (e *Evaluator) arith(left, right string, minus bool, r Reader) state.Value {
	lv, lok := e.operand(left, r)
	rv, rok := e.operand(right, r)
	if !lok {
		return state.String(strings.TrimSpace(e.Interpolate(left, r)))
	}
	if !rok {
		return state.Int(lv)
	}
	if minus {
		return state.Int(lv - rv)
	}
	return state.Int(lv + rv)
}

func (e *Evaluator) operand(raw string, r Reader) (int64, bool) {
	s := strings.TrimSpace(e.Interpolate(raw, r))
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	if isPathExpr(s) {
		if v, ok := r.Lookup(s); ok {
			if i, ok := v.Int(); ok {
				return i, true
			}
		}
	}
	return 0, false
}

func (e *Evaluator) engineEval(src string, r Reader) (state.Value, bool) {
	var env map[string]any
	if sn, ok := r.(Snapshotter); ok {
		env = sn.Snapshot()
	}
	return e.engine.Evaluate(src, env)
}

// quotedLiteral unwraps a single-quoted string literal.
func quotedLiteral(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' && !strings.Contains(s[1:len(s)-1], "'") {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// splitTernary splits "cond ? a : b" at the first '?' and the matching ':'
// outside quotes. Both branches are returned untrimmed; Evaluate trims.
func splitTernary(s string) (cond, then, els string, ok bool) {
	q := strings.IndexByte(s, '?')
	if q < 0 || inQuotes(s, q) {
		return "", "", "", false
	}
	rest := s[q+1:]
	for i := 0; i < len(rest); i++ {
		if rest[i] == ':' && !inQuotes(rest, i) {
			return s[:q], rest[:i], rest[i+1:], true
		}
	}
	return "", "", "", false
}

// splitArith splits a single top-level " + " or " - ". The spaced form keeps
// negative literals and hyphenated keys out of the operator position.
func splitArith(s string) (left, right string, minus, ok bool) {
	if i := indexOutsideSpans(s, " + "); i >= 0 {
		return s[:i], s[i+3:], false, true
	}
	if i := indexOutsideSpans(s, " - "); i >= 0 {
		return s[:i], s[i+3:], true, true
	}
	return "", "", false, false
}

// indexOutsideSpans finds op outside quotes and outside ${...} spans.
func indexOutsideSpans(s, op string) int {
	depth := 0
	for i := 0; i+len(op) <= len(s); i++ {
		if strings.HasPrefix(s[i:], "${") {
			depth++
			i++
			continue
		}
		if depth > 0 {
			if s[i] == '}' {
				depth--
			}
			continue
		}
		if inQuotes(s, i) {
			continue
		}
		if s[i:i+len(op)] == op {
			return i
		}
	}
	return -1
}

// splitArrayOp recognizes the member-form suffixes. Returns the operation
// name, the base path, and the contains argument when present.
func splitArrayOp(expr string) (op, base, arg string) {
	if strings.HasSuffix(expr, ")") {
		open := strings.Index(expr, ".contains(")
		if open > 0 {
			return "contains", expr[:open], expr[open+len(".contains(") : len(expr)-1]
		}
		return "", "", ""
	}
	for _, suffix := range []string{"count", "isEmpty", "first", "last"} {
		if strings.HasSuffix(expr, "."+suffix) {
			return suffix, expr[:len(expr)-len(suffix)-1], ""
		}
	}
	return "", "", ""
}

// inQuotes reports whether position i sits inside a single-quoted literal.
func inQuotes(s string, i int) bool {
	inside := false
	for j := 0; j < i; j++ {
		if s[j] == '\'' {
			inside = !inside
		}
	}
	return inside
}

// isPathExpr reports whether s looks like a bare keypath: identifier
// characters, dots and digit brackets, nothing else.
func isPathExpr(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '[' || r == ']' || r == '-':
		default:
			return false
		}
	}
	return true
}
