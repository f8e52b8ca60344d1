package report

import (
	"fmt"
	"os"
)

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause the
// program to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a missing module
// file, an unreadable path, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportModuleError reports an error loading or validating a module.
func ReportModuleError(modName string, message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.errorCount++

		displayModuleMessage(true, modName, fmt.Sprintf(message, args...))
	}
}

// ReportModuleWarning reports a warning related to a module.
func ReportModuleWarning(modName string, message string, args ...interface{}) {
	if rep.logLevel >= LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.warningCount++

		displayModuleMessage(false, modName, fmt.Sprintf(message, args...))
	}
}

// ReportSourceError reports an error in a piece of source text.  The src is
// the full source text the span indexes into.  The reprPath is the
// representative name for that source text: a file path or a pseudo-path such
// as `<query>`.  The span may be nil in which case no position information
// will be printed.
func ReportSourceError(src, reprPath string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.errorCount++

		displaySourceMessage("error", src, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportSourceWarning reports a warning in a piece of source text.  The
// arguments are of the same form as those to ReportSourceError.
func ReportSourceWarning(src, reprPath string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel >= LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.warningCount++

		displaySourceMessage("warning", src, reprPath, span, fmt.Sprintf(message, args...))
	}
}
