package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinAndSplitAdIDs(t *testing.T) {
	assert.Equal(t, "111,222,333", joinAdIDs([]string{"111", "222", "333"}))
	assert.Equal(t, "", joinAdIDs(nil))

	assert.Equal(t, []string{"111", "222"}, splitAdIDs("111,222"))
	assert.Equal(t, []string{"111"}, splitAdIDs(" 111 "))
	assert.Empty(t, splitAdIDs(""))
	assert.Empty(t, splitAdIDs(" , "))
}
