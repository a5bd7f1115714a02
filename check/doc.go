// Package check decides whether a response passes a step, and describes the
// response for the report.
//
// A Policy is one of two shapes. Exact-shape policies (ExpectField and
// friends) require a specific status and body layout. TolerateStatus accepts
// a set of statuses and only shows that the endpoint is alive; its outcomes
// are tagged framework.Liveness so the summary can count them apart.
package check
