package errors

import (
	stderr "errors"
	"testing"

	"github.com/eaugeas/arbor/logs"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad script", New(CodeScript, "bad script", nil).Error())

	cause := stderr.New("line 3")
	err := New(CodeScript, "bad script", cause)
	assert.Equal(t, "bad script: line 3", err.Error())
	assert.True(t, stderr.Is(err, cause))
}

func TestErrorLog(t *testing.T) {
	fields := logs.MapFields{}

	New(CodeInvalidTree, "invalid tree", stderr.New("imbalance")).Log(fields)

	assert.Equal(t, logs.MapFields{
		"error_code":  CodeInvalidTree,
		"description": "invalid tree",
		"cause":       "imbalance",
	}, fields)
}
