package graph

import (
	"context"

	"github.com/graphql-go/graphql"
)

// NewSchema declares the GraphQL shape of the companies table and binds
// the resolvers. The Company type mirrors the table one to one: id and
// six business attributes are non-null, timestamps are storage-managed.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	companyType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Company",
		Description: "A company registered in the directory.",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"contactEmail":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"streetAddress": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"city":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"country":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"domain":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"company": &graphql.Field{
				Description: "Look up a single company by id.",
				Type:        companyType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.ResolveCompany,
			},
			"companies": &graphql.Field{
				Description: "List all companies.",
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(companyType))),
				Resolve:     r.ResolveCompanies,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCompany": &graphql.Field{
				Description: "Create a company. All attributes are required.",
				Type:        graphql.NewNonNull(companyType),
				Args: graphql.FieldConfigArgument{
					"name":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"contactEmail":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"streetAddress": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"city":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"country":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"domain":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.ResolveCreateCompany,
			},
			"updateCompany": &graphql.Field{
				Description: "Update the given attributes of a company and return the refreshed record.",
				Type:        graphql.NewNonNull(companyType),
				Args: graphql.FieldConfigArgument{
					"id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":          &graphql.ArgumentConfig{Type: graphql.String},
					"contactEmail":  &graphql.ArgumentConfig{Type: graphql.String},
					"streetAddress": &graphql.ArgumentConfig{Type: graphql.String},
					"city":          &graphql.ArgumentConfig{Type: graphql.String},
					"country":       &graphql.ArgumentConfig{Type: graphql.String},
					"domain":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.ResolveUpdateCompany,
			},
			"deleteCompany": &graphql.Field{
				Description: "Delete a company by id and return the deleted record.",
				Type:        graphql.NewNonNull(companyType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.ResolveDeleteCompany,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// Do runs a single GraphQL request against the schema. Used by the CLI
// execution path and tests; the HTTP server goes through the handler.
func Do(ctx context.Context, schema graphql.Schema, query string, variables map[string]interface{}, operationName string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
		OperationName:  operationName,
		Context:        ctx,
	})
}
