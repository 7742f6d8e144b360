package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanIP(t *testing.T) {
	assert.Equal(t, "203.0.113.7", CleanIP("::ffff:203.0.113.7"))
	assert.Equal(t, "203.0.113.7", CleanIP("203.0.113.7"))
	assert.Equal(t, "2001:db8::1", CleanIP("2001:db8::1"))
	assert.Equal(t, "", CleanIP(""))
}
