package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages produced while running the Candi toolchain.  Its methods may be
// called from multiple goroutines safely.
type Reporter struct {
	m        *sync.Mutex
	logLevel int
	isErr    bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors.
	LogLevelWarn           // Displays warnings and errors.
	LogLevelVerbose        // Displays all toolchain messages (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter to the given log level.  If
// the reporter has already been initialized, this function does nothing.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{
			m:        &sync.Mutex{},
			logLevel: logLevel,
			isErr:    false,
		}
	}
}

// ShouldProceed indicates whether no errors have been reported so far.
func ShouldProceed() bool {
	return rep == nil || !rep.isErr
}

// AnyErrors returns whether any errors were reported.
func AnyErrors() bool {
	return rep != nil && rep.isErr
}
