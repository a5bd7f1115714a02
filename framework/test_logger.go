package framework

// TestLogger receives progress notifications for a run. It is the only place
// where output is produced; suites and steps never print directly.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, outcome TestOutcome, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                               {}
func (n nullTestLogger) TestError(TestID, error)                          {}
func (n nullTestLogger) TestFinished(TestID, TestOutcome, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                       {}
