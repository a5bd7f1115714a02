// Package wallettests contains the endpoint suites for the wallet backend and
// the small API they are written against.
//
// Generic machinery such as outcome recording, filtering and reporting lives
// in the framework package; HTTP transport lives in client; acceptance
// policies live in check. This package only knows which endpoints exist, what
// to send them, and which results later steps depend on.
package wallettests
