// Package exitcode defines named exit codes for the hicpipe CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and cluster job wrappers.
package exitcode

// Exit code constants.
const (
	Success        = 0   // Run finished (or dry run composed) successfully
	Error          = 1   // Invalid args, file not found, misconfiguration
	ConfigInvalid  = 2   // Resolved configuration failed validation
	GenomeNotFound = 3   // Genome configuration missing or incomplete
	NoSamples      = 4   // No input files matched the configured extension
	EngineFailed   = 5   // The workflow engine exited non-zero
	Interrupted    = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case ConfigInvalid:
		return "ConfigInvalid"
	case GenomeNotFound:
		return "GenomeNotFound"
	case NoSamples:
		return "NoSamples"
	case EngineFailed:
		return "EngineFailed"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
