package graph

import graphql "github.com/graph-gophers/graphql-go"

// SchemaString es el SDL del API. El transporte (relay handler) y el
// parsing son de la librería; acá solo viven los resolvers.
const SchemaString = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	type Point {
		lng: Float!
		lat: Float!
	}

	input PointInput {
		lng: Float!
		lat: Float!
	}

	type User {
		id: ID!
		userName: String!
		email: String!
		role: String
	}

	type LoginResponse {
		message: String!
		token: String!
		user: User!
	}

	type Cat {
		id: ID!
		name: String!
		breed: String!
		weight: Float!
		birthdate: Time
		location: Point!
		owner: User!
	}

	input CatInput {
		name: String!
		breed: String!
		weight: Float!
		birthdate: Time
		location: PointInput!
	}

	input CatPatchInput {
		name: String
		breed: String
		weight: Float
		birthdate: Time
		location: PointInput
	}

	input RegisterInput {
		userName: String!
		email: String!
		password: String!
	}

	input CredentialsInput {
		username: String!
		password: String!
	}

	input UserPatchInput {
		userName: String
		email: String
		password: String
	}

	type Query {
		cats: [Cat!]!
		catById(id: ID!): Cat
		catsByOwner(ownerId: ID!): [Cat!]!
		catsByArea(topRight: PointInput!, bottomLeft: PointInput!): [Cat!]!

		users: [User!]!
		userById(id: ID!): User!
		checkToken: User!
	}

	type Mutation {
		createCat(input: CatInput!): Cat!
		updateCat(id: ID!, input: CatPatchInput!): Cat
		deleteCat(id: ID!): Cat
		updateCatAsAdmin(id: ID!, input: CatPatchInput!): Cat
		deleteCatAsAdmin(id: ID!): Cat

		register(user: RegisterInput!): LoginResponse!
		login(credentials: CredentialsInput!): LoginResponse!
		updateUser(user: UserPatchInput!): LoginResponse!
		deleteUser: LoginResponse!
	}
`

// NewSchema parsea el SDL contra el resolver. Panic en schema inválido:
// eso es un bug de build, no un error de runtime.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(SchemaString, r)
}
