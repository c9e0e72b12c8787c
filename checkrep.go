// File: checkrep.go
// Role: Rep-invariant enforcement shared by both representations.
//
// Policy:
//   - A representation invariant violation is a defect in this package, not
//     a user-facing error: it panics and is never returned or swallowed.
//   - Checks run after every mutation, before returning to the caller, so a
//     mutating operation either fully applies and passes the check or
//     rejects its arguments up front and leaves state untouched.

package digraph

import "fmt"

// repCheckEnabled gates the post-mutation invariant checks. It is a
// compile-time constant so that flipping it to false removes the check
// bodies from release builds entirely; it ships enabled as the development
// correctness net (the Go analogue of running the JVM with -ea).
const repCheckEnabled = true

// repViolation panics with a uniform defect message. Never recover from it:
// it means this package, not the caller, is broken.
func repViolation(format string, args ...interface{}) {
	panic(fmt.Sprintf("digraph: rep invariant violated: "+format, args...))
}
