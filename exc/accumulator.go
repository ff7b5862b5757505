// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "sync"

// Reporter accumulates exceptions across several parse runs. A driver that
// processes many inputs can report each failure and keep going, then show
// the full set at the end rather than stopping at the first bad input.
type Reporter interface {
	// Report adds the given exception to the set. A non-nil return means the
	// exception is fatal and the caller should stop.
	Report(Exception) Exception
	// Reported returns the set of accumulated exceptions.
	Reported() []Exception
}

// NewReporter returns a concurrent-safe implementation of Reporter. Codes
// listed in nonFatal are accumulated without aborting.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal)+len(nonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporterLock{
		Reporter: &reporter{
			nonFatal: nf,
		},
		lock: &sync.Mutex{},
	}
}

type reporter struct {
	reported []Exception
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	return r.reported
}

type reporterLock struct {
	Reporter
	lock sync.Locker
}

func (r *reporterLock) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Report(e)
}

func (r *reporterLock) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Reported()
}
