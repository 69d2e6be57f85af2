package cats

import "time"

// Point es una coordenada geográfica (longitud, latitud).
type Point struct {
	Lng float64
	Lat float64
}

// Polygon es un anillo cerrado de coordenadas (primer punto == último).
// Es un valor efímero: solo se usa como predicado de queries, no se persiste.
type Polygon struct {
	Ring []Point
}

// Cat representa un recurso geolocalizado con dueño.
type Cat struct {
	ID string

	// Owner es el id del user en el auth-server. Referencia débil:
	// acá solo se guarda el identificador, la identidad vive en el remoto.
	// Se fija server-side al crear (del credential context) y nunca
	// viene del caller.
	Owner string

	Name      string
	Breed     string
	Weight    float64
	Birthdate *time.Time

	Location Point

	CreatedAt time.Time
	UpdatedAt time.Time
}
