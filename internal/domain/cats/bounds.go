package cats

// RectangleBounds arma el rectángulo (alineado a los ejes lng/lat) definido
// por dos esquinas, como anillo cerrado de 5 puntos:
// bottom-left, bottom-right, top-right, top-left, bottom-left.
//
// No valida que topRight esté realmente al noreste de bottomLeft: esquinas
// invertidas o degeneradas producen un anillo degenerado y eso es aceptado,
// no corregido.
func RectangleBounds(topRight, bottomLeft Point) Polygon {
	bl := Point{Lng: bottomLeft.Lng, Lat: bottomLeft.Lat}
	br := Point{Lng: topRight.Lng, Lat: bottomLeft.Lat}
	tr := Point{Lng: topRight.Lng, Lat: topRight.Lat}
	tl := Point{Lng: bottomLeft.Lng, Lat: topRight.Lat}

	return Polygon{
		Ring: []Point{bl, br, tr, tl, bl},
	}
}
