package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdownWrapsPythonFunctionInPyFence(t *testing.T) {
	input := "def greet(name):\n    return \"Hello, \" + name"

	got, err := New().Convert(input, ModeToMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "```py\n"+input+"\n```", got)
}

func TestToMarkdownDetectsJavaScript(t *testing.T) {
	input := "function add(a, b) {\n    return a + b;\n}"

	got, err := New().Convert(input, ModeToMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "```js\n"+input+"\n```", got)
}

func TestToMarkdownPromotesHeadings(t *testing.T) {
	input := "Introduction\n\nThis paragraph explains the topic at great length and ends with a period."

	got, err := New().Convert(input, ModeToMarkdown)
	require.NoError(t, err)

	assert.Equal(t,
		"# Introduction\n\nThis paragraph explains the topic at great length and ends with a period.",
		got)
}

func TestToMarkdownKeepsLists(t *testing.T) {
	bulleted := "- apples\n- bananas\n- cherries"
	numbered := "1. First step\n2. Second step\n3. Third step"

	c := New()

	got, err := c.Convert(bulleted, ModeToMarkdown)
	require.NoError(t, err)
	assert.Equal(t, bulleted, got)

	got, err = c.Convert(numbered, ModeToMarkdown)
	require.NoError(t, err)
	assert.Equal(t, numbered, got)
}

func TestToMarkdownLinksBareURLs(t *testing.T) {
	got, err := New().Convert("Visit https://example.com for more details.", ModeToMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "Visit [https://example.com](https://example.com) for more details.", got)
}

func TestToMarkdownQuotesInlineHTMLTags(t *testing.T) {
	got, err := New().Convert("Use the <div> tag to group elements.", ModeToMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "Use the `<div>` tag to group elements.", got)
}

func TestToMarkdownStrengthensEmphasis(t *testing.T) {
	got, err := New().Convert("This point is *very important* to remember.", ModeToMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "This point is **very important** to remember.", got)
}

func TestToTextStripsHeadingsAndEmphasis(t *testing.T) {
	got, err := New().Convert("# Title\n\nSome **bold** and *italic* text.", ModeToText)
	require.NoError(t, err)

	assert.Equal(t, "Title\n\nSome bold and italic text.", got)
}

func TestToTextBulletedListOneLinePerItem(t *testing.T) {
	got, err := New().Convert("- one\n- two\n- three", ModeToText)
	require.NoError(t, err)

	assert.Equal(t, "- one\n- two\n- three", got)
}

func TestToTextNumberedListKeepsOrder(t *testing.T) {
	got, err := New().Convert("1. first\n2. second\n3. third", ModeToText)
	require.NoError(t, err)

	assert.Equal(t, "1. first\n2. second\n3. third", got)
}

func TestToTextRendersLinksWithURL(t *testing.T) {
	got, err := New().Convert("See [the docs](https://docs.example.com) first.", ModeToText)
	require.NoError(t, err)

	assert.Equal(t, "See the docs (https://docs.example.com) first.", got)
}

func TestToTextPreservesFencedCodeVerbatim(t *testing.T) {
	code := "def f():\n    return 1"
	input := "Before.\n\n```py\n" + code + "\n```\n\nAfter."

	got, err := New().Convert(input, ModeToText)
	require.NoError(t, err)

	assert.Equal(t, "Before.\n\n"+code+"\n\nAfter.", got)
}

func TestToTextKeepsInlineCodeBackticks(t *testing.T) {
	got, err := New().Convert("Wrap it in a `<div>` element.", ModeToText)
	require.NoError(t, err)

	assert.Equal(t, "Wrap it in a `<div>` element.", got)
}

func TestRoundTripPreservesCodeContent(t *testing.T) {
	code := "def add(a, b):\n    return a + b"
	input := "A short explanation of the snippet shown below, in plain words.\n\n" + code

	c := New()

	md, err := c.Convert(input, ModeToMarkdown)
	require.NoError(t, err)
	require.Contains(t, md, "```py\n")

	text, err := c.Convert(md, ModeToText)
	require.NoError(t, err)

	assert.Contains(t, text, code)
}

func TestConvertDeterministic(t *testing.T) {
	input := "Overview\n\nSome prose about https://example.com and *key* ideas.\n\n- a\n- b"

	c := New()

	for _, mode := range []Mode{ModeToMarkdown, ModeToText} {
		first, err := c.Convert(input, mode)
		require.NoError(t, err)

		second, err := c.Convert(input, mode)
		require.NoError(t, err)

		assert.Equal(t, first, second, "mode %s", mode)
	}
}

func TestConvertUnsupportedMode(t *testing.T) {
	_, err := New().Convert("text", Mode("sideways"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConversionFailed))
}

func TestIsValidMode(t *testing.T) {
	assert.True(t, IsValidMode(ModeToMarkdown))
	assert.True(t, IsValidMode(ModeToText))
	assert.False(t, IsValidMode(Mode("markdown")))
}
