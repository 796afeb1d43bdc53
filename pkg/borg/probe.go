package borg

import (
	"strings"

	"github.com/baletools/bale/pkg/runner"
)

// repoExistsMarker is the diagnostic borg emits when init is pointed at
// an existing repository. The probe below is the only place depending on
// borg's wording: if an engine upgrade rephrases the message, this
// constant is the single line to fix.
const repoExistsMarker = "A repository already exists at"

// repoExistsExit is the borg exit status accompanying that diagnostic
const repoExistsExit = 2

// IsRepo reports whether dir holds a borg repository.
//
// The probe attempts to initialize a new unencrypted repository at dir:
// borg refuses to initialize over an existing one, so the probe passes
// only when the attempt fails with the documented status and diagnostic.
// This is a cheap existence test, not an integrity check, and it can
// leave a freshly initialized repository behind when dir was empty.
func (e *Engine) IsRepo(dir string) bool {
	res, err := e.run(
		[]string{"init", "--encryption", "none", dir},
		runner.WithCapture(), runner.WithNoCheck(),
	)
	if err != nil {
		return false
	}
	return res.ExitCode == repoExistsExit && strings.Contains(res.Stderr, repoExistsMarker)
}
