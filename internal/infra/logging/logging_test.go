package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden")
	logger.Warn("shown")

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.WithField("step", "build").Debug("running")

	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "step=build")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	assert.NotNil(t, logger)
}
