package graph

import (
	"fmt"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/corpdir/corpdir/internal/company"
)

// Resolver holds the data access layer for all GraphQL resolvers.
// Every resolver is a direct pass-through to a single store call.
type Resolver struct {
	Store *company.Store
}

// ResolveCompany handles the company(id) query.
func (r *Resolver) ResolveCompany(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	return r.Store.FindByID(p.Context, id)
}

// ResolveCompanies handles the companies query.
func (r *Resolver) ResolveCompanies(p graphql.ResolveParams) (interface{}, error) {
	return r.Store.FindAll(p.Context)
}

// ResolveCreateCompany handles the createCompany mutation. All six
// attributes are non-null arguments, so the coerced values are present.
func (r *Resolver) ResolveCreateCompany(p graphql.ResolveParams) (interface{}, error) {
	c := &company.Company{
		Name:          p.Args["name"].(string),
		ContactEmail:  p.Args["contactEmail"].(string),
		StreetAddress: p.Args["streetAddress"].(string),
		City:          p.Args["city"].(string),
		Country:       p.Args["country"].(string),
		Domain:        p.Args["domain"].(string),
	}
	if err := r.Store.Create(p.Context, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ResolveUpdateCompany handles the updateCompany mutation: apply the
// provided attributes, then return the refreshed row.
func (r *Resolver) ResolveUpdateCompany(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	for arg, column := range company.Columns {
		if v, ok := p.Args[arg]; ok {
			changes[column] = v
		}
	}

	return r.Store.Update(p.Context, id, changes)
}

// ResolveDeleteCompany handles the deleteCompany mutation and returns
// the deleted row.
func (r *Resolver) ResolveDeleteCompany(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	return r.Store.Delete(p.Context, id)
}

// parseID converts a coerced ID argument into a database id. GraphQL ID
// values arrive as strings; anything non-numeric fails before the store
// is touched.
func parseID(raw interface{}) (uint, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("invalid company id: %v", raw)
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid company id: %q", s)
	}
	return uint(id), nil
}
