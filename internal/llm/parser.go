package llm

import "strings"

// cleanCypher strips markdown fences and surrounding noise from a generated
// Cypher query. Models wrap queries in code blocks despite instructions.
func cleanCypher(content string) string {
	content = strings.TrimSpace(content)

	for _, fence := range []string{"```cypher", "```Cypher", "```CYPHER", "```"} {
		content = strings.ReplaceAll(content, fence, "")
	}

	return strings.TrimSpace(content)
}
