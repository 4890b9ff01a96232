package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserParseChar(t *testing.T) {
	t.Parallel()

	p := NewParser()
	readings := p.ParseChar("好")
	require.NotEmpty(t, readings)
	assert.Equal(t, "hǎo", readings[0].Full)
	assert.Equal(t, "hao3", readings[0].Numbered)
	assert.Equal(t, Tone3, readings[0].Tone)

	assert.Nil(t, p.ParseChar("a"))
}

func TestParserWordPinyin(t *testing.T) {
	t.Parallel()

	p := NewParser()
	assert.Equal(t, "xī wàng", p.WordPinyin("希望"))
	assert.Equal(t, "xī wàng", p.WordPinyin("希 望!"))
	assert.Equal(t, "", p.WordPinyin("abc"))
}
