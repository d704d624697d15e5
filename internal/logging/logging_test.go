package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	original := base.GetLevel()
	t.Cleanup(func() { base.SetLevel(original) })

	testCases := []struct {
		name        string
		environment string
		level       string
		expected    logrus.Level
	}{
		{name: "development defaults to debug", environment: "development", expected: logrus.DebugLevel},
		{name: "production defaults to error", environment: "production", expected: logrus.ErrorLevel},
		{name: "other environments default to info", environment: "staging", expected: logrus.InfoLevel},
		{name: "explicit level wins", environment: "production", level: "warn", expected: logrus.WarnLevel},
		{name: "unknown level keeps profile", environment: "staging", level: "loud", expected: logrus.InfoLevel},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.environment, tt.level)
			assert.Equal(t, tt.expected, base.GetLevel())
		})
	}
}

func TestForTagsComponent(t *testing.T) {
	entry := For("services")
	assert.Equal(t, "services", entry.Data["component"])
	assert.Same(t, base, entry.Logger)
}
