package question

// maxUniqueRetries bounds the search for a not-yet-seen question per
// batch slot before a duplicate is accepted.
const maxUniqueRetries = 50

// DefaultBatchSize is the number of questions in a standard session.
const DefaultBatchSize = 10

// Batch is a session's worth of pre-generated questions plus the
// generation diagnostics that the per-question fallbacks would
// otherwise hide.
type Batch struct {
	Questions []*Question

	// Duplicates counts slots where no unique question was found
	// within maxUniqueRetries and a repeat was accepted.
	Duplicates int

	// Fallbacks counts slots whose kept question is a static
	// fallback; discarded retries do not count.
	Fallbacks int
}

// Batch generates n questions for the operation and level, avoiding
// duplicate (num1, op, num2) triples within the batch. When the
// question space is too small to stay unique, duplicates are accepted
// rather than stalling, and counted in the diagnostics.
func (g *Generator) Batch(op Operation, level Level, n int) *Batch {
	if n <= 0 {
		n = DefaultBatchSize
	}

	b := &Batch{Questions: make([]*Question, 0, n)}
	used := make(map[string]bool, n)

	for i := 0; i < n; i++ {
		q, fellBack := g.unique(op, level, used)
		if q == nil {
			q, fellBack = g.question(op, level)
			b.Duplicates++
		}
		if fellBack {
			b.Fallbacks++
		}
		used[q.Key()] = true
		b.Questions = append(b.Questions, q)
	}
	return b
}

// unique returns a question whose key is not in used, or nil when
// maxUniqueRetries generations all collided.
func (g *Generator) unique(op Operation, level Level, used map[string]bool) (*Question, bool) {
	for retries := 0; retries < maxUniqueRetries; retries++ {
		q, fellBack := g.question(op, level)
		if !used[q.Key()] {
			return q, fellBack
		}
	}
	return nil, false
}
