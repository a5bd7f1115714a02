package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordCountsEveryOutcome(t *testing.T) {
	var r Results
	o := TestOutcome{Name: "GET /api/v1/ping", Passed: true}
	r.Record(o)
	r.Record(o)
	r.Record(TestOutcome{Name: "GET /actuator/health"})

	assert.Len(t, r.Outcomes, 3)
	assert.Equal(t, 2, r.Passed)
	assert.Equal(t, 1, r.Failed)
	assert.Equal(t, []TestOutcome{{Name: "GET /actuator/health"}}, r.Failures())
}

func TestSkipsAreCountedButNotListed(t *testing.T) {
	var r Results
	r.RecordSkipped()
	r.RecordSkipped()
	assert.Equal(t, 2, r.Skipped)
	assert.Empty(t, r.Outcomes)
	assert.Equal(t, Summary{Skipped: 2}, r.Summary())
	assert.Equal(t, 0, ExitCode(r))
}

func TestSummary(t *testing.T) {
	var r Results
	for i := 0; i < 17; i++ {
		r.Record(TestOutcome{Passed: true})
	}
	for i := 0; i < 3; i++ {
		r.Record(TestOutcome{Passed: true, Category: Liveness})
	}
	r.Record(TestOutcome{Category: Liveness})
	r.RecordSkipped()

	s := r.Summary()
	assert.Equal(t, Summary{Total: 21, Passed: 20, Failed: 1, Skipped: 1, LivenessOnly: 3}, s)
	rate, ok := s.PassRate()
	assert.True(t, ok)
	assert.InDelta(t, 95.238, rate, 0.001)
}

func TestPassRateUndefinedWithoutOutcomes(t *testing.T) {
	_, ok := Summary{Skipped: 4}.PassRate()
	assert.False(t, ok)
}

func TestExitCode(t *testing.T) {
	var r Results
	assert.Equal(t, 0, ExitCode(r))

	r.Record(TestOutcome{Passed: true})
	assert.Equal(t, 0, ExitCode(r))

	r.Record(TestOutcome{Passed: false})
	assert.Equal(t, 1, ExitCode(r))

	assert.Equal(t, 1, ExitCode(Results{Interrupted: true}))
	assert.Equal(t, 1, ExitCode(Results{Fault: errors.New("x")}))
}

func TestTestID(t *testing.T) {
	parent := TestID{}.Child("WalletController")
	a := parent.Child("a")
	b := parent.Child("b")
	assert.Equal(t, "WalletController/a", a.String())
	assert.Equal(t, "WalletController/b", b.String())
	assert.Equal(t, "b", b.Name())
	assert.Equal(t, "", TestID{}.Name())
}
