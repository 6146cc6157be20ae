package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CAMP_TEST_VAR", "set")
	assert.Equal(t, "set", GetEnv("CAMP_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CAMP_TEST_VAR_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CAMP_TEST_INT", "25")
	assert.Equal(t, 25, GetEnvInt("CAMP_TEST_INT", 10))

	t.Setenv("CAMP_TEST_INT", "not-a-number")
	assert.Equal(t, 10, GetEnvInt("CAMP_TEST_INT", 10))

	assert.Equal(t, 10, GetEnvInt("CAMP_TEST_INT_MISSING", 10))
}
