package cmd

import "github.com/bnema/trastodon/internal/domain"

const (
	exitOK                 = 0
	exitFailure            = 1
	exitRegistrationFailed = 2
	exitLoginFailed        = 3
	exitSessionInvalid     = 4
	exitRequestFailed      = 5
)

// ExitCode maps a command error to the process exit status. State, grammar,
// lock and usage failures all exit 1.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}

	switch domain.KindOf(err) {
	case domain.KindRegistrationFailed:
		return exitRegistrationFailed
	case domain.KindLoginFailed:
		return exitLoginFailed
	case domain.KindSessionInvalid:
		return exitSessionInvalid
	case domain.KindRequestFailed:
		return exitRequestFailed
	default:
		return exitFailure
	}
}

func operatorMessage(err error) (string, bool) {
	switch domain.KindOf(err) {
	case domain.KindRegistrationFailed:
		return "couldn't register app. check your server url", true
	case domain.KindLoginFailed:
		return "couldn't log in with provided authorization code", true
	case domain.KindStatePersistFailed:
		return "could not write state file", true
	case domain.KindStateUnavailable:
		return "Couldn't read state file!", true
	case domain.KindStateLocked:
		return "State file is in use by another trastodon run", true
	case domain.KindSessionInvalid:
		return "Couldn't log in. Try auth first", true
	case domain.KindGrammarUnreadable:
		return "Grammar file could not be read! Check your path and permissions", true
	case domain.KindRequestFailed:
		return "Request to the server failed: " + err.Error(), true
	default:
		return "", false
	}
}
