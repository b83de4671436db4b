package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStr(t *testing.T) {
	obj := map[string]any{"amount": "42", "count": 3, "nil": nil}

	assert.Equal(t, "42", GetStr(obj, "amount"))
	assert.Equal(t, "", GetStr(obj, "count"))
	assert.Equal(t, "", GetStr(obj, "nil"))
	assert.Equal(t, "", GetStr(obj, "missing"))
	assert.Equal(t, "", GetStr(nil, "amount"))
}

func TestIfEmptyElse(t *testing.T) {
	assert.Equal(t, "fallback", IfEmptyElse("", "fallback"))
	assert.Equal(t, "value", IfEmptyElse("value", "fallback"))
}
