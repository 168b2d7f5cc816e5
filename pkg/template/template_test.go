package template_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/adr/pkg/link"
	"github.com/aretw0/adr/pkg/template"
)

const compact = `# {{id}}. {{name}}

{{status}} on {{date}}

{{#links}}
- {{{link.comment}}} [{{{link.id}}}]({{{link.file}}})
{{/links}}

## Context
`

func names(id int) string {
	return map[int]string{1: "0001-first.md", 3: "0003-third.md"}[id]
}

func TestParse(t *testing.T) {
	tmpl, err := template.Parse(compact)
	require.NoError(t, err)
	assert.Equal(t, link.Templates{Link: "- {{{link.comment}}} [{{{link.id}}}]({{{link.file}}})"}, tmpl.Links())
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"no block":       "# {{id}}. {{name}}\n",
		"not closed":     "{{#links}}\n- {{{link.id}}}\n",
		"end first":      "{{/links}}\n{{#links}}\n",
		"nested":         "{{#links}}\n{{#links}}\n{{/links}}\n",
		"too many lines": "{{#links}}\na\nb\nc\n{{/links}}\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := template.Parse(text)
			assert.ErrorIs(t, err, template.ErrLinkBlock)
		})
	}

	_, err := template.Parse("{{#links}}\n\n{{/links}}\n")
	assert.True(t, errors.Is(err, link.ErrMissingTemplate))
}

func TestDefault(t *testing.T) {
	tmpl := template.Default()
	links := tmpl.Links()
	assert.Equal(t, "{{{link.comment}}} [ADR {{{link.id}}}]({{{link.file}}})", links.Link)
	assert.Contains(t, links.Comment, link.TokenTemplate)
	assert.Contains(t, template.DefaultText(), template.BlockStart)
}

func TestRender_NoLinks(t *testing.T) {
	tmpl, err := template.Parse(compact)
	require.NoError(t, err)

	out, err := tmpl.Render(template.Data{ID: 4, Name: "Use Go", Date: "2026-10-17", Status: "Accepted"}, nil, names)
	require.NoError(t, err)
	assert.Equal(t, "# 4. Use Go\n\nAccepted on 2026-10-17\n\n## Context\n", out)
}

func TestRender_Links(t *testing.T) {
	tmpl, err := template.Parse(compact)
	require.NoError(t, err)

	links := []link.Spec{
		link.MustParse("1:amends:Amended by"),
		{},
		link.MustParse("3:supersedes"),
	}
	out, err := tmpl.Render(template.Data{ID: 4, Name: "Use Go", Date: "2026-10-17", Status: "Accepted"}, links, names)
	require.NoError(t, err)

	want := "# 4. Use Go\n\nAccepted on 2026-10-17\n\n" +
		"- Amends [1](0001-first.md)\n" +
		"- Supersedes [3](0003-third.md)\n" +
		"\n## Context\n"
	assert.Equal(t, want, out)
}

func TestRender_DefaultWithMetadata(t *testing.T) {
	out, err := template.Default().Render(template.Data{ID: 2, Name: "Use {{name}} literally", Date: "2026-10-17", Status: "Accepted"},
		[]link.Spec{link.MustParse("1:amends")}, names)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# 2. Use {{name}} literally\n"))
	assert.Contains(t, out, "Amends [ADR 1](0001-first.md)\n\n<!-- ")
	assert.Contains(t, out, `{{{link.id="1"}}}`)
	assert.Equal(t, []link.Annotation{{ID: 1, Comment: "Amends", File: "0001-first.md"}}, link.Annotations(out))
	assert.NotContains(t, out, template.BlockStart)
}
