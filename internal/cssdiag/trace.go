package cssdiag

import "go.uber.org/zap"

// Tracer is an optional operational-tracing sink, grounded on
// rupor-github-fb2cng/css/parser.go wrapping a *zap.Logger around its CSS
// parser. It is a separate concern from Log: Log carries the structured
// messages a caller branches on (strict-mode failures, warnings surfaced
// to the library user); Tracer carries debug-level breadcrumbs for
// operators watching a running pipeline.
type Tracer struct {
	log *zap.Logger
}

// NewTracer wraps log for use as a Tracer. A nil log produces a Tracer
// whose methods are no-ops, mirroring fb2cng's NewParser(nil) fallback to
// zap.NewNop().
func NewTracer(log *zap.Logger) Tracer {
	if log == nil {
		log = zap.NewNop()
	}
	return Tracer{log: log.Named("css")}
}

// NoopTracer returns a Tracer that discards everything, for callers that
// don't want tracing overhead.
func NoopTracer() Tracer { return Tracer{log: zap.NewNop()} }

func (t Tracer) ParsedRule(selector string, declCount int) {
	t.log.Debug("parsed rule", zap.String("selector", selector), zap.Int("declarations", declCount))
}

func (t Tracer) ParsedAtRule(name string) {
	t.log.Debug("parsed at-rule", zap.String("at_rule", name))
}

func (t Tracer) Recovered(tag Tag, loc Loc) {
	t.log.Debug("recovered from malformed input", zap.String("tag", tag.String()), zap.Int32("pos", loc.Start))
}

func (t Tracer) DroppedImport(url string, reason string) {
	t.log.Debug("dropped @import", zap.String("url", url), zap.String("reason", reason))
}

func (t Tracer) Flattened(selectorGroups int, rules int) {
	t.log.Debug("flattened stylesheet", zap.Int("selector_groups", selectorGroups), zap.Int("rules", rules))
}
