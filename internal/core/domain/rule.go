package domain

import "strings"

// frontmatterDelim is the sentinel line that opens and closes the
// frontmatter block of a rule file.
const frontmatterDelim = "---"

// RuleDocument is a Cursor rule file: an optional opaque frontmatter block
// and a markdown body. The frontmatter is carried verbatim; RuleForge never
// interprets it.
type RuleDocument struct {
	Frontmatter string
	Body        string
}

// Encode renders the document in .mdc form. When frontmatter is present it
// is wrapped in `---` sentinel lines followed by a blank line and the body.
func (r *RuleDocument) Encode() string {
	var b strings.Builder
	if r.Frontmatter != "" {
		b.WriteString(frontmatterDelim + "\n")
		b.WriteString(strings.TrimRight(r.Frontmatter, "\n"))
		b.WriteString("\n" + frontmatterDelim + "\n\n")
	}
	b.WriteString(r.Body)
	return b.String()
}

// AppendBlock appends a text block to the body, separated by a blank line.
func (r *RuleDocument) AppendBlock(block string) {
	block = strings.TrimRight(block, "\n")
	if block == "" {
		return
	}
	if r.Body != "" {
		r.Body = strings.TrimRight(r.Body, "\n") + "\n\n"
	}
	r.Body += block + "\n"
}

// Clone returns a copy of the document.
func (r *RuleDocument) Clone() *RuleDocument {
	cp := *r
	return &cp
}

// ParseRuleDocument splits raw .mdc content into frontmatter and body.
// Content without a leading `---` block is treated as all body.
func ParseRuleDocument(raw string) *RuleDocument {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	trimmed := strings.TrimLeft(raw, "\n")
	if !strings.HasPrefix(trimmed, frontmatterDelim+"\n") {
		return &RuleDocument{Body: strings.TrimSpace(raw)}
	}

	rest := strings.TrimPrefix(trimmed, frontmatterDelim+"\n")
	idx := strings.Index(rest, "\n"+frontmatterDelim)
	if idx < 0 {
		// Unterminated frontmatter: treat everything as body.
		return &RuleDocument{Body: strings.TrimSpace(raw)}
	}

	frontmatter := strings.TrimSpace(rest[:idx])
	body := rest[idx+len("\n"+frontmatterDelim):]
	// Drop the remainder of the closing sentinel line.
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}

	return &RuleDocument{
		Frontmatter: frontmatter,
		Body:        strings.TrimSpace(body),
	}
}
