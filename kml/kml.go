// Package kml renders geometries as KML elements for use with Google
// Earth and similar viewers. X maps to longitude, Y to latitude, and Z
// to altitude when present.
package kml

import (
	"fmt"
	"io"

	gokml "github.com/twpayne/go-kml/v2"

	"github.com/dvanauken/geo-gis/geom"
)

// Encode converts g into the equivalent KML geometry element.
// Multi geometries, surfaces, and collections become MultiGeometry.
func Encode(g geom.Geom) (gokml.Element, error) {
	switch v := g.(type) {
	case geom.Point:
		return gokml.Point(gokml.Coordinates(coordinate(v))), nil
	case *geom.LineString:
		if v.IsEmpty() {
			return nil, fmt.Errorf("kml: encode linestring: %w", geom.ErrEmptyGeometry)
		}
		return gokml.LineString(gokml.Coordinates(coordinates(v.Points())...)), nil
	case *geom.LinearRing:
		if v.IsEmpty() {
			return nil, fmt.Errorf("kml: encode ring: %w", geom.ErrEmptyGeometry)
		}
		return gokml.LinearRing(gokml.Coordinates(coordinates(v.Points())...)), nil
	case *geom.Polygon:
		return encodePolygon(v)
	case *geom.Triangle:
		return encodePolygon(v.AsPolygon())
	case *geom.MultiPoint:
		var els []gokml.Element
		for _, p := range v.Points() {
			els = append(els, gokml.Point(gokml.Coordinates(coordinate(p))))
		}
		return multi(els)
	case *geom.MultiLineString:
		var els []gokml.Element
		for i := 1; i <= v.NumGeometries(); i++ {
			l, err := v.GeometryN(i)
			if err != nil {
				return nil, err
			}
			el, err := Encode(l)
			if err != nil {
				return nil, err
			}
			els = append(els, el)
		}
		return multi(els)
	case *geom.MultiPolygon:
		var els []gokml.Element
		for _, p := range v.Polygons() {
			el, err := encodePolygon(p)
			if err != nil {
				return nil, err
			}
			els = append(els, el)
		}
		return multi(els)
	case *geom.PolyhedralSurface:
		var els []gokml.Element
		for i := 1; i <= v.NumPatches(); i++ {
			p, err := v.PatchN(i)
			if err != nil {
				return nil, err
			}
			el, err := encodePolygon(p)
			if err != nil {
				return nil, err
			}
			els = append(els, el)
		}
		return multi(els)
	case *geom.TIN:
		var els []gokml.Element
		for i := 1; i <= v.NumTriangles(); i++ {
			tr, err := v.TriangleN(i)
			if err != nil {
				return nil, err
			}
			el, err := encodePolygon(tr.AsPolygon())
			if err != nil {
				return nil, err
			}
			els = append(els, el)
		}
		return multi(els)
	case *geom.GeometryCollection:
		var els []gokml.Element
		for i := 1; i <= v.NumGeometries(); i++ {
			m, err := v.GeometryN(i)
			if err != nil {
				return nil, err
			}
			el, err := Encode(m)
			if err != nil {
				return nil, err
			}
			els = append(els, el)
		}
		return multi(els)
	}
	return nil, fmt.Errorf("kml: encode %T: %w", g, geom.ErrUnsupportedOperation)
}

func encodePolygon(p *geom.Polygon) (gokml.Element, error) {
	ext := p.ExteriorRing()
	if ext == nil {
		return nil, fmt.Errorf("kml: encode polygon: %w", geom.ErrEmptyGeometry)
	}
	children := []gokml.Element{
		gokml.OuterBoundaryIs(gokml.LinearRing(gokml.Coordinates(coordinates(ext.Points())...))),
	}
	for i := 1; i <= p.NumInteriorRing(); i++ {
		hole, err := p.InteriorRingN(i)
		if err != nil {
			return nil, err
		}
		children = append(children,
			gokml.InnerBoundaryIs(gokml.LinearRing(gokml.Coordinates(coordinates(hole.Points())...))))
	}
	return gokml.Polygon(children...), nil
}

func multi(els []gokml.Element) (gokml.Element, error) {
	if len(els) == 0 {
		return nil, fmt.Errorf("kml: encode: %w", geom.ErrEmptyGeometry)
	}
	return gokml.MultiGeometry(els...), nil
}

// Placemark wraps the encoded geometry in a named placemark.
func Placemark(name string, g geom.Geom) (gokml.Element, error) {
	el, err := Encode(g)
	if err != nil {
		return nil, err
	}
	return gokml.Placemark(gokml.Name(name), el), nil
}

// EncodeDoc builds a complete kml document holding one placemark per
// geometry, named name-1, name-2, and so on.
func EncodeDoc(name string, gs ...geom.Geom) (gokml.Element, error) {
	children := []gokml.Element{gokml.Name(name)}
	for i, g := range gs {
		pm, err := Placemark(fmt.Sprintf("%s-%d", name, i+1), g)
		if err != nil {
			return nil, err
		}
		children = append(children, pm)
	}
	return gokml.KML(gokml.Document(children...)), nil
}

// WriteDoc writes an indented kml document for gs to w.
func WriteDoc(w io.Writer, name string, gs ...geom.Geom) error {
	doc, err := EncodeDoc(name, gs...)
	if err != nil {
		return err
	}
	return doc.WriteIndent(w, "", "  ")
}

func coordinate(p geom.Point) gokml.Coordinate {
	c := gokml.Coordinate{Lon: p.X, Lat: p.Y}
	if p.Dim().HasZ() {
		c.Alt = p.Z
	}
	return c
}

func coordinates(pts []geom.Point) []gokml.Coordinate {
	out := make([]gokml.Coordinate, len(pts))
	for i, p := range pts {
		out[i] = coordinate(p)
	}
	return out
}
