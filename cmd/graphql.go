package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/corpdir/corpdir/internal/graph"
)

var (
	queryJSON      bool
	queryVariables string
	queryOperation string
)

var graphqlCmd = &cobra.Command{
	Use:     "graphql <query>",
	Aliases: []string{"query"},
	Short:   "Execute a GraphQL query or mutation",
	Long: `Execute a GraphQL query or mutation against the company directory.

The argument should be a valid GraphQL query or mutation string.

Examples:
  # List all companies
  corpdir graphql '{ companies { id name city } }'

  # Get a specific company
  corpdir graphql '{ company(id: 1) { name contactEmail domain } }'

  # Create a company
  corpdir graphql 'mutation {
    createCompany(name: "Globex", contactEmail: "info@globex.example",
      streetAddress: "10 Hammond Dr", city: "Cypress Creek",
      country: "USA", domain: "globex.example") { id }
  }'

  # Use variables
  corpdir graphql -v '{"id": "1"}' 'query GetCompany($id: ID!) { company(id: $id) { name } }'

  # Read from stdin (useful for complex queries or escaping issues)
  echo '{ companies { id name } }' | corpdir graphql
  cat query.graphql | corpdir graphql`,
	Args: func(cmd *cobra.Command, args []string) error {
		// Allow 0 args if stdin has data, or exactly 1 arg
		if len(args) > 1 {
			return fmt.Errorf("accepts at most 1 argument (the GraphQL query)")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		} else {
			stdinQuery, err := readFromStdin()
			if err != nil {
				return err
			}
			if stdinQuery == "" {
				return fmt.Errorf("no query provided (pass as argument or pipe to stdin)")
			}
			query = stdinQuery
		}

		// Parse variables if provided
		var variables map[string]any
		if queryVariables != "" {
			if err := json.Unmarshal([]byte(queryVariables), &variables); err != nil {
				return fmt.Errorf("invalid variables JSON: %w", err)
			}
		}

		result, err := executeQuery(query, variables, queryOperation)
		if err != nil {
			return err
		}

		if queryJSON {
			fmt.Println(string(result))
		} else {
			prettyPrint(result)
		}

		return nil
	},
}

// readFromStdin reads the query from stdin if data is available.
func readFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}

	// If stdin is a terminal (no pipe), return empty
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// executeQuery runs a GraphQL query against the company store.
// On success, it returns just the data portion of the response.
// On error, it returns an error so the CLI can handle it appropriately.
func executeQuery(query string, variables map[string]any, operationName string) ([]byte, error) {
	schema, err := graph.NewSchema(&graph.Resolver{Store: store})
	if err != nil {
		return nil, fmt.Errorf("building schema: %w", err)
	}

	result := graph.Do(context.Background(), schema, query, variables, operationName)
	if len(result.Errors) > 0 {
		return nil, formatGraphQLErrors(result.Errors)
	}

	return json.Marshal(result.Data)
}

// formatGraphQLErrors formats GraphQL errors into a single error.
func formatGraphQLErrors(errs []gqlerrors.FormattedError) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return fmt.Errorf("graphql: %s", errs[0].Message)
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("graphql errors:\n  %s", strings.Join(msgs, "\n  "))
}

// prettyPrint outputs the JSON with colors and indentation.
func prettyPrint(data []byte) {
	fmt.Println(string(pretty.Color(pretty.Pretty(data), nil)))
}

func init() {
	graphqlCmd.Flags().BoolVar(&queryJSON, "json", false, "Output raw JSON (no formatting)")
	graphqlCmd.Flags().StringVarP(&queryVariables, "variables", "v", "", "Query variables as JSON string")
	graphqlCmd.Flags().StringVarP(&queryOperation, "operation", "o", "", "Operation name (for multi-operation documents)")
	rootCmd.AddCommand(graphqlCmd)
}
