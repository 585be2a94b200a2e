package minesolver

import "log"

// tracer emits the Verbose debug trace (spec §6). It is not part of Result;
// it exists purely to help a caller watch a solve in progress.
//
// No sibling package in this module reaches for a structured-logging
// library, so the trace stays on the standard log package rather than
// introducing a new dependency for a debug-only path.
type tracer struct {
	enabled bool
}

func newTracer(enabled bool) tracer {
	return tracer{enabled: enabled}
}

func (t tracer) round(n int, rec RoundRecord, out outcome) {
	if !t.enabled {
		return
	}
	switch {
	case rec.Trivial != nil:
		log.Printf("minesolver: round %d: store=%d trivial revealed=%d flagged=%d",
			n, rec.NumIneqs, len(rec.Trivial.Revealed), len(rec.Trivial.Flagged))
	case rec.Exact != nil && rec.Inexact != nil:
		log.Printf("minesolver: round %d: store=%d exact-cross(%d) then inexact-cross(%d)",
			n, rec.NumIneqs, rec.Exact.Count, rec.Inexact.Count)
	case rec.Exact != nil:
		log.Printf("minesolver: round %d: store=%d exact-cross(%d)", n, rec.NumIneqs, rec.Exact.Count)
	case rec.Inexact != nil:
		log.Printf("minesolver: round %d: store=%d inexact-cross(%d)", n, rec.NumIneqs, rec.Inexact.Count)
	default:
		log.Printf("minesolver: round %d: store=%d no stage fired", n, rec.NumIneqs)
	}
	log.Printf("minesolver: round %d: outcome=%d", n, out)
}
