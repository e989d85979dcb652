package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepString(t *testing.T) {
	assert.Equal(t, "Started", StepStarted.String())
	assert.Equal(t, "CheckingOut", StepCheckingOut.String())
	assert.Equal(t, "PoppingStash", StepPoppingStash.String())
}

func TestStepStringUnknownFutureStep(t *testing.T) {
	future := StepCompleted + 1

	assert.Equal(t, "Unknown", future.String())
	assert.Equal(t, "Working...", future.Message())
}

func TestStepMessages(t *testing.T) {
	assert.Equal(t, "Fetching from origin...", StepFetching.Message())
	assert.Equal(t, "Restoring stashed changes...", StepPoppingStash.Message())
}
