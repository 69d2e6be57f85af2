package identity

import (
	"fmt"
	"net/http"
)

// User es la proyección que consumimos del auth-server.
// No se persiste ni se cachea localmente; siempre viene fresco del remoto.
type User struct {
	ID       string `json:"id,omitempty"`
	UserName string `json:"user_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

// LoginResponse es la forma de respuesta de register/login/update/delete
// en el auth-server.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// LoginInput son las credenciales de login (pass-through al auth-server).
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RemoteError es la traducción uniforme de cualquier respuesta no-2xx
// del auth-server: status code + status text del remoto.
type RemoteError struct {
	StatusCode int
	Status     string
}

func (e *RemoteError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("auth-server error: status=%d", e.StatusCode)
}

// NewRemoteError arma un RemoteError con el status text estándar.
func NewRemoteError(statusCode int) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
	}
}
