// Package framework contains the part of the harness that does not know what
// is being tested.
//
// The general model is:
//
// 1. A Controller runs a fixed list of suites in order, optionally after a
// login that must succeed first, then prints a summary and picks an exit code.
//
// 2. Each suite gets a Context. Steps run through Context.Step, which records
// exactly one thing per step in Results: a passed or failed TestOutcome, or a
// skip.
//
// 3. Everything visible to the user goes through a TestLogger, so suites can
// run headless in unit tests.
//
// There is a single goroutine of control. Steps and suites never overlap, so
// Results and any state threaded between steps need no locking.
package framework
