// Package session owns the authoritative test state for both tester
// variants: flash tracking, the reaction state machine, result logs and
// derived statistics. It has no rendering or platform dependencies and is
// driven purely by timestamps handed in from the frame clock.
package session

// ResultLog is a bounded, newest-first sequence of reaction times in
// milliseconds. Inserting beyond capacity evicts the oldest (tail) entry.
type ResultLog struct {
	limit int
	times []float64
}

// NewResultLog creates a log holding at most limit entries.
func NewResultLog(limit int) *ResultLog {
	return &ResultLog{
		limit: limit,
		times: make([]float64, 0, limit),
	}
}

// Insert places a measurement at the front of the log, evicting the
// oldest entry when the log is full.
func (l *ResultLog) Insert(ms float64) {
	if len(l.times) == l.limit {
		l.times = l.times[:len(l.times)-1]
	}
	l.times = append([]float64{ms}, l.times...)
}

// Times returns the entries, newest first. The slice is owned by the log.
func (l *ResultLog) Times() []float64 {
	return l.times
}

// Len returns the number of recorded entries.
func (l *ResultLog) Len() int {
	return len(l.times)
}

// Clear discards all entries.
func (l *ResultLog) Clear() {
	l.times = l.times[:0]
}

// Stats holds the running statistics derived from a ResultLog.
type Stats struct {
	Average float64
	Best    float64
}

// Stats recomputes average and best from scratch. The log is bounded, so
// a full recompute on every append stays cheap; there is no incremental
// state to drift. Both values are zero when the log is empty.
func (l *ResultLog) Stats() Stats {
	if len(l.times) == 0 {
		return Stats{}
	}

	sum := 0.0
	best := l.times[0]
	for _, t := range l.times {
		sum += t
		if t < best {
			best = t
		}
	}
	return Stats{
		Average: sum / float64(len(l.times)),
		Best:    best,
	}
}

// TextLog is a bounded, newest-first sequence of formatted log lines used
// by the latency tester's scrolling event log.
type TextLog struct {
	limit int
	lines []string
}

// NewTextLog creates a log holding at most limit lines.
func NewTextLog(limit int) *TextLog {
	return &TextLog{
		limit: limit,
		lines: make([]string, 0, limit),
	}
}

// Insert places a line at the front, evicting the oldest when full.
func (l *TextLog) Insert(line string) {
	if len(l.lines) == l.limit {
		l.lines = l.lines[:len(l.lines)-1]
	}
	l.lines = append([]string{line}, l.lines...)
}

// Lines returns the entries, newest first.
func (l *TextLog) Lines() []string {
	return l.lines
}

// Len returns the number of lines.
func (l *TextLog) Len() int {
	return len(l.lines)
}

// Clear discards all lines.
func (l *TextLog) Clear() {
	l.lines = l.lines[:0]
}
