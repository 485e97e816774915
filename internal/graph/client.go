package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/kopigraph/kopigraph/internal/common"
	"github.com/kopigraph/kopigraph/internal/config"
	"github.com/kopigraph/kopigraph/internal/service"
)

// Client wraps the Bolt driver and exposes the query surface the rest of
// the application uses. It implements service.GraphStore.
type Client struct {
	driver neo4j.DriverWithContext
	uri    string
}

// NewClient opens a driver against the configured Neo4j instance and
// verifies connectivity before returning.
func NewClient(ctx context.Context, cfg config.Graph) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrGraphConnection, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", common.ErrGraphConnection, err)
	}

	return &Client{driver: driver, uri: cfg.URI}, nil
}

// NewClientWithWait is NewClient with bounded connection retries, for use
// when the database may still be starting.
func NewClientWithWait(ctx context.Context, cfg config.Graph, opts service.RetryOptions) (*Client, error) {
	var client *Client
	err := common.WithRetry(ctx, func() error {
		c, connectErr := NewClient(ctx, cfg)
		if connectErr != nil {
			return connectErr
		}
		client = c
		return nil
	}, opts)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Close releases the underlying driver.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// ExecuteQuery runs a Cypher query and returns one flattened map per record.
// Node and relationship values are reduced to their property maps, the way
// callers want to see them in JSON responses.
func (c *Client) ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	var records []map[string]any
	for result.Next(ctx) {
		record := result.Record().AsMap()
		for key, value := range record {
			record[key] = flattenValue(value)
		}
		records = append(records, record)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("result iteration failed: %w", err)
	}

	return records, nil
}

// ValidateQuery checks a Cypher query via EXPLAIN without executing it.
// A failure wraps common.ErrInvalidCypher so callers can treat it as an
// expected, user-visible condition.
func (c *Client) ValidateQuery(ctx context.Context, cypher string) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, "EXPLAIN "+cypher, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidCypher, err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidCypher, err)
	}
	return nil
}

// Stats returns node and relationship counts by label and type.
func (c *Client) Stats(ctx context.Context) (map[string]int64, error) {
	const statsQuery = `
MATCH (n)
WITH labels(n) AS labels, count(*) AS count
RETURN labels[0] AS type, count
UNION ALL
MATCH ()-[r]->()
WITH type(r) AS rel_type, count(*) AS count
RETURN rel_type AS type, count`

	records, err := c.ExecuteQuery(ctx, statsQuery, nil)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64, len(records))
	for _, record := range records {
		name, ok := record["type"].(string)
		if !ok {
			continue
		}
		if count, ok := record["count"].(int64); ok {
			stats[name] = count
		}
	}
	return stats, nil
}

// CountCoffees returns the number of Coffee nodes in the graph.
func (c *Client) CountCoffees(ctx context.Context) (int64, error) {
	records, err := c.ExecuteQuery(ctx, "MATCH (c:Coffee) RETURN count(c) AS count", nil)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	count, _ := records[0]["count"].(int64)
	return count, nil
}

// Clear removes every node and relationship from the database.
func (c *Client) Clear(ctx context.Context) error {
	_, err := c.ExecuteQuery(ctx, "MATCH (n) DETACH DELETE n", nil)
	return err
}

// flattenValue reduces driver entity types to plain property maps so results
// serialize cleanly.
func flattenValue(value any) any {
	switch v := value.(type) {
	case dbtype.Node:
		return v.Props
	case dbtype.Relationship:
		return v.Props
	case []any:
		flattened := make([]any, len(v))
		for i, item := range v {
			flattened[i] = flattenValue(item)
		}
		return flattened
	default:
		return value
	}
}
