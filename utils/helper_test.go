package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 2, TotalPages(15, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"love", "nature"}, NormalizeTags([]string{" love ", "", "nature", "  "}))
	assert.Empty(t, NormalizeTags(nil))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"love", "nature"}, SplitCSV("love, nature"))
	assert.Nil(t, SplitCSV(""))
	assert.Equal(t, []string{"love"}, SplitCSV("love,,"))
}
