package graphql

import (
	"github.com/graphql-go/graphql"
)

// buildSchema wires the resolver into the static query and mutation surface.
// Field results are plain structs; the executor maps them through their json
// tags, so the wire names below line up with the entity definitions.
func buildSchema(r *Resolver) (graphql.Schema, error) {
	employeeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Employee",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"first_name": &graphql.Field{Type: graphql.String},
			"last_name":  &graphql.Field{Type: graphql.String},
			"email":      &graphql.Field{Type: graphql.String},
			"gender":     &graphql.Field{Type: graphql.String},
			"salary":     &graphql.Field{Type: graphql.Float},
		},
	})

	// The User type deliberately has no password field. The stored hash
	// never crosses the API boundary.
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username": &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"token":    &graphql.Field{Type: graphql.String},
		},
	})

	queryFields := graphql.Fields{
		"getAllEmployees": &graphql.Field{
			Type:    graphql.NewList(graphql.NewNonNull(employeeType)),
			Resolve: r.resolveGetAllEmployees,
		},
		"getEmployeeById": &graphql.Field{
			Type: employeeType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveGetEmployeeByID,
		},
	}

	mutationFields := graphql.Fields{
		"signup": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.resolveSignup,
		},
		"addEmployee": &graphql.Field{
			Type: employeeType,
			Args: graphql.FieldConfigArgument{
				"first_name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"last_name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"gender":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"salary":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			},
			Resolve: r.resolveAddEmployee,
		},
		"updateEmployee": &graphql.Field{
			Type: employeeType,
			Args: graphql.FieldConfigArgument{
				"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"first_name": &graphql.ArgumentConfig{Type: graphql.String},
				"last_name":  &graphql.ArgumentConfig{Type: graphql.String},
				"email":      &graphql.ArgumentConfig{Type: graphql.String},
				"gender":     &graphql.ArgumentConfig{Type: graphql.String},
				"salary":     &graphql.ArgumentConfig{Type: graphql.Float},
			},
			Resolve: r.resolveUpdateEmployee,
		},
		"deleteEmployee": &graphql.Field{
			Type: graphql.String,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveDeleteEmployee,
		},
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: queryFields}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutationFields}),
	})
}
