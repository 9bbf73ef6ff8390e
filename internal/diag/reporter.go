package diag

// Reporter - минимальный контракт получения диагностик от фаз.
// Report must not panic and must not abort the caller.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a plain callback to Reporter.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

// BagReporter - адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// MultiReporter fans a diagnostic out to every non-nil reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}

// CountingReporter forwards to Next and counts diagnostics per severity.
type CountingReporter struct {
	Next     Reporter
	Errors   int
	Warnings int
	Infos    int
}

func (c *CountingReporter) Report(d Diagnostic) {
	switch d.Severity {
	case SevError:
		c.Errors++
	case SevWarning:
		c.Warnings++
	default:
		c.Infos++
	}
	if c.Next != nil {
		c.Next.Report(d)
	}
}
