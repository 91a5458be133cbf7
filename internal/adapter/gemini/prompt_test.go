package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voicecart/voicecart/internal/core/domain"
)

func TestProductContext(t *testing.T) {
	ctx := productContext(domain.DefaultCatalog())

	lines := strings.Split(ctx, "\n")
	assert.Len(t, lines, 20)
	assert.Equal(t, "- Apple ($1.5) [aliases: apples, apple]", lines[0])
	assert.Contains(t, ctx, "- Wheat Flour ($1.1) [aliases: flour, wheat flour, atta]")
	// Whole prices render without a trailing ".0".
	assert.Contains(t, ctx, "- Banana ($1)")
}

func TestExtractPrompt(t *testing.T) {
	prompt := extractPrompt(domain.DefaultCatalog(), "Add 2 mangoes and 1 milk")

	assert.Contains(t, prompt, `"Add 2 mangoes and 1 milk"`)
	assert.Contains(t, prompt, "- Mango ($2)")
	assert.Contains(t, prompt, `action "unavailable"`)
	assert.Contains(t, prompt, "no markdown formatting")
}

func TestChatPrompt(t *testing.T) {
	prompt := chatPrompt(domain.DefaultCatalog(), "Do you have coffee?")

	assert.Contains(t, prompt, "Do you have coffee?")
	assert.Contains(t, prompt,
		"Fruits, Dairy, Groceries, Beverages, Snacks")
	assert.True(t, strings.HasSuffix(prompt, "AI Assistant:"))
}

func TestSearchPrompt(t *testing.T) {
	prompt := searchPrompt(domain.DefaultCatalog(), "something sweet")

	assert.Contains(t, prompt, `"something sweet"`)
	assert.Contains(t, prompt, `"relevance": "exact" | "similar" | "related"`)
}
