package reduce

type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleInline
	RuleBeta
	RuleAlpha
	RuleCollapse
)

func (k RuleKind) String() string {
	switch k {
	case RuleInline:
		return "inline"
	case RuleBeta:
		return "beta"
	case RuleAlpha:
		return "alpha"
	case RuleCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// TraceEvent records one rewrite. Name is the definition, binder or
// primary the rule acted on, when there is one.
type TraceEvent struct {
	Step uint64
	Pass uint64
	Rule RuleKind
	Name string
}

type traceRing struct {
	buf []TraceEvent
	cap uint64
	idx uint64
	on  bool
}

// EnableTrace keeps the first capacity rewrites for TraceSnapshot.
func (r *Reducer) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	r.trace = traceRing{
		buf: make([]TraceEvent, capacity),
		cap: uint64(capacity),
		on:  true,
	}
}

func (r *Reducer) DisableTrace() {
	r.trace.on = false
}

func (r *Reducer) TraceSnapshot() []TraceEvent {
	if !r.trace.on {
		return nil
	}
	count := r.trace.idx
	if count > r.trace.cap {
		count = r.trace.cap
	}
	res := make([]TraceEvent, count)
	copy(res, r.trace.buf[:count])
	return res
}

func (r *Reducer) recordTrace(rule RuleKind, name string) {
	if !r.trace.on || r.trace.cap == 0 {
		return
	}
	idx := r.trace.idx
	r.trace.idx++
	if idx >= r.trace.cap {
		return
	}
	r.trace.buf[idx] = TraceEvent{
		Step: idx,
		Pass: r.passes,
		Rule: rule,
		Name: name,
	}
}
