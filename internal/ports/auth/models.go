package auth

// Claims representa el contexto de credenciales por request:
// id del caller en el auth-server, rol y el bearer token crudo.
// Se deriva upstream (middleware); el core solo lo lee.
type Claims struct {
	UserID string
	Role   string

	// Token es opaco: aquí solo se chequea presencia o se reenvía
	// al auth-server. La verificación real es del auth-server.
	Token string
}

// RoleAdmin es el único rol con semántica local (bypass de ownership).
const RoleAdmin = "admin"
