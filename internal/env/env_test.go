package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	t.Setenv("VISLOG_TEST_A", "")
	t.Setenv("VISLOG_TEST_B", "b")

	v, ok := First("VISLOG_TEST_A", "VISLOG_TEST_B")
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = First("VISLOG_TEST_A")
	assert.False(t, ok)
}

func TestIsCI(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("BUILD_NUMBER", "")
	t.Setenv("RUN_ID", "")
	assert.False(t, IsCI())

	t.Setenv("BUILD_NUMBER", "42")
	assert.True(t, IsCI())
}
