package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostPreview(t *testing.T) {
	short := Post{Text: "short"}
	assert.Equal(t, "short", short.Preview(15))

	long := Post{Text: strings.Repeat("a", 40)}
	assert.Equal(t, strings.Repeat("a", 15), long.Preview(15))

	// Truncation counts runes, not bytes
	cyrillic := Post{Text: strings.Repeat("я", 20)}
	assert.Equal(t, strings.Repeat("я", 15), cyrillic.Preview(15))

	exact := Post{Text: strings.Repeat("b", 15)}
	assert.Equal(t, exact.Text, exact.Preview(15))

	assert.Equal(t, "", Post{Text: "anything"}.Preview(0))
	assert.Equal(t, "", Post{Text: "anything"}.Preview(-1))
}
