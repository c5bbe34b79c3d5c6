package geometry

import "github.com/katalvlaran/mpscircuit/simerr"

func unsupportedParity(parity Parity) error {
	return simerr.InvalidArgument("geometry.Bricklayer.Elements", "unknown parity %q", parity)
}

func unsupportedGeometry(g Geometry) error {
	return simerr.Unsupported("geometry.ComputeSites", "geometry kind %v is not supported by the pure site computer", g.Kind())
}
