package llm

import (
	"encoding/json"
	"fmt"
)

// cypherSystemPrompt builds the system prompt for Cypher generation. The
// schema description is embedded so the model grounds its queries in real
// labels, relationships, and property names.
func cypherSystemPrompt(schema string) string {
	return fmt.Sprintf(`You are an expert at converting natural language questions into Neo4j Cypher queries.

%s

Important Rules:
1. Generate ONLY valid Cypher query syntax
2. Do NOT include explanations, markdown, or any text except the query
3. Use MATCH patterns for retrieving data
4. Use proper relationship directions
5. ALWAYS use 'code' property for WHERE clause filtering (not 'name')
6. ALWAYS use 'name' property in RETURN clause for display
7. Order results when appropriate
8. Limit results to reasonable numbers (e.g., LIMIT 50)
9. For comparison queries, return data from both entities

Example transformations:
- "coffees from Italy" -> MATCH (c:Coffee)-[:ORIGINATES_FROM]->(o:Origin) WHERE o.code = 'italy' RETURN c.name
- "espresso-based coffees" -> MATCH (c:Coffee)-[:HAS_BASE]->(b:Base) WHERE b.code = 'espresso' RETURN c.name ORDER BY c.name
- "coffees with no milk" -> MATCH (c:Coffee)-[:HAS_MILK]->(m:MilkType) WHERE m.code = 'none' RETURN c.name
- "what is espresso" -> MATCH (c:Coffee {code: 'espresso'}) OPTIONAL MATCH (c)-[r]-(n) RETURN c.name, type(r), labels(n)[0] AS node_type, n.name
- "difference between latte and cappuccino" -> MATCH (c:Coffee) WHERE c.code IN ['latte', 'cappuccino'] OPTIONAL MATCH (c)-[r]-(n) RETURN c.name, type(r), labels(n)[0], n.name ORDER BY c.name

Generate ONLY the Cypher query, nothing else.`, schema)
}

const formatSystemPrompt = `You are a helpful assistant that explains coffee knowledge graph query results in natural language.
Convert the technical query results into a friendly, informative response.
Be concise but informative.
If there are multiple results, present them as a numbered list with each item on its own line.
Do not place multiple list items on the same line.
If there are no results, explain that politely.`

// formatUserPrompt builds the user prompt for result formatting.
func formatUserPrompt(question string, records []map[string]any) (string, error) {
	resultsJSON, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	return fmt.Sprintf(`User asked: %q

Query results (as JSON):
%s

Please provide a natural language response based on these results.`, question, resultsJSON), nil
}
