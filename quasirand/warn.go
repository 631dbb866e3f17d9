package quasirand

import "fmt"

// Warn is called for non-fatal conditions that the original implementation
// surfaces as Python warnings (e.g. drawing a sample size that breaks the
// Sobol' power-of-two balance property). It defaults to a no-op; set it to
// route these notices to an application's logger instead of silently
// dropping them. This mirrors gonum's convention of leaving diagnostic
// hooks as plain package variables rather than depending on a logging
// framework (see optimize.Settings.Recorder for the analogous pattern).
var Warn func(string) = func(string) {}

// Warnf formats and dispatches a warning through Warn.
func Warnf(format string, args ...interface{}) {
	Warn(fmt.Sprintf(format, args...))
}
