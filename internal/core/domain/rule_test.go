package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleDocument(t *testing.T) {
	t.Run("frontmatter and body", func(t *testing.T) {
		doc := ParseRuleDocument(`---
description: Spring Boot rules
alwaysApply: true
---

# Rules
- rule one
`)
		assert.Equal(t, "description: Spring Boot rules\nalwaysApply: true", doc.Frontmatter)
		assert.Equal(t, "# Rules\n- rule one", doc.Body)
	})

	t.Run("body only", func(t *testing.T) {
		doc := ParseRuleDocument("# Just rules\n")
		assert.Empty(t, doc.Frontmatter)
		assert.Equal(t, "# Just rules", doc.Body)
	})

	t.Run("unterminated frontmatter is treated as body", func(t *testing.T) {
		doc := ParseRuleDocument("---\ndescription: broken\n# never closed")
		assert.Empty(t, doc.Frontmatter)
		assert.Contains(t, doc.Body, "description: broken")
	})

	t.Run("windows line endings", func(t *testing.T) {
		doc := ParseRuleDocument("---\r\ndescription: crlf\r\n---\r\n\r\n# Body\r\n")
		assert.Equal(t, "description: crlf", doc.Frontmatter)
		assert.Equal(t, "# Body", doc.Body)
	})

	t.Run("encode parse round trip", func(t *testing.T) {
		original := &RuleDocument{
			Frontmatter: "description: round trip",
			Body:        "# Body\n\n## Section",
		}
		parsed := ParseRuleDocument(original.Encode())
		require.NotNil(t, parsed)
		assert.Equal(t, original.Frontmatter, parsed.Frontmatter)
		assert.Equal(t, original.Body, parsed.Body)
	})
}

func TestRuleDocument_Encode(t *testing.T) {
	t.Run("without frontmatter only the body is emitted", func(t *testing.T) {
		doc := &RuleDocument{Body: "# Body"}
		assert.Equal(t, "# Body", doc.Encode())
	})

	t.Run("frontmatter is wrapped in sentinels", func(t *testing.T) {
		doc := &RuleDocument{Frontmatter: "description: x", Body: "# Body"}
		assert.Equal(t, "---\ndescription: x\n---\n\n# Body", doc.Encode())
	})
}

func TestRuleDocument_AppendBlock(t *testing.T) {
	t.Run("blocks are separated by a blank line", func(t *testing.T) {
		doc := &RuleDocument{Body: "# First\n"}
		doc.AppendBlock("# Second")
		assert.Equal(t, "# First\n\n# Second\n", doc.Body)
	})

	t.Run("appending to an empty body", func(t *testing.T) {
		doc := &RuleDocument{}
		doc.AppendBlock("# Only")
		assert.Equal(t, "# Only\n", doc.Body)
	})

	t.Run("empty block is a no-op", func(t *testing.T) {
		doc := &RuleDocument{Body: "# Body\n"}
		doc.AppendBlock("")
		doc.AppendBlock("\n\n")
		assert.Equal(t, "# Body\n", doc.Body)
	})
}

func TestRuleDocument_Clone(t *testing.T) {
	original := &RuleDocument{Frontmatter: "f", Body: "b"}
	clone := original.Clone()
	clone.AppendBlock("# extra")

	assert.Equal(t, "b", original.Body)
	assert.Contains(t, clone.Body, "# extra")
}
