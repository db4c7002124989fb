package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	name := GetRandomName()
	assert.Regexp(t, `^[A-Z][a-z]+ [A-Z][a-z]+$`, name)
}
