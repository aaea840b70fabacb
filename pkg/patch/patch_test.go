package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyUnsetLeavesValue(t *testing.T) {
	v := "keep"
	var f Field[string]
	assert.False(t, f.Apply(&v))
	assert.Equal(t, "keep", v)
}

func TestApplyOverwritesWhenDifferent(t *testing.T) {
	v := "old"
	assert.True(t, Set("new").Apply(&v))
	assert.Equal(t, "new", v)
}

func TestApplySameValueReportsNoChange(t *testing.T) {
	v := "same"
	assert.False(t, Set("same").Apply(&v))
}

func TestApplyPtr(t *testing.T) {
	var dst *int

	var unset Field[int]
	assert.False(t, unset.ApplyPtr(&dst))
	assert.Nil(t, dst)

	assert.True(t, Set(7).ApplyPtr(&dst))
	if assert.NotNil(t, dst) {
		assert.Equal(t, 7, *dst)
	}

	assert.False(t, Set(7).ApplyPtr(&dst))
	assert.True(t, Set(8).ApplyPtr(&dst))
	assert.Equal(t, 8, *dst)
}
