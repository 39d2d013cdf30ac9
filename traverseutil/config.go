/*
Copyright © 2026 the Traverse authors.
This file is part of Traverse.

Traverse is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Traverse is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Traverse.  If not, see <http://www.gnu.org/licenses/>.
*/

package traverseutil

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/traverse"
	"github.com/spf13/cast"
)

// Log is the logger the commands report progress to.
var Log = logrus.StandardLogger()

// parsePoint parses a location given as 'x,y'.
func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("traverse: invalid point %q; the format is 'x,y'", s)
	}
	x, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
	if err != nil {
		return geom.Point{}, fmt.Errorf("traverse: invalid point %q: %v", s, err)
	}
	y, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
	if err != nil {
		return geom.Point{}, fmt.Errorf("traverse: invalid point %q: %v", s, err)
	}
	return geom.Point{X: x, Y: y}, nil
}

// parseGeometry reads a travel area from a GeoJSON file holding a
// Polygon or MultiPolygon.
func parseGeometry(file string) (geom.MultiPolygon, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("traverse: reading geometry file: %v", err)
	}
	j, err := geojson.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("traverse: decoding geometry file %s: %v", file, err)
	}
	switch g := j.(type) {
	case geom.Polygon:
		return geom.MultiPolygon{g}, nil
	case geom.MultiPolygon:
		return g, nil
	default:
		return nil, fmt.Errorf("traverse: geometry file %s: type %T is not usable as a travel area", file, j)
	}
}

// writePath writes p to file as a GeoJSON LineString.
func writePath(p geom.LineString, file string) error {
	b, err := geojson.Encode(p)
	if err != nil {
		return fmt.Errorf("traverse: encoding path: %v", err)
	}
	if err := ioutil.WriteFile(file, b, 0644); err != nil {
		return fmt.Errorf("traverse: writing path file: %v", err)
	}
	return nil
}

// RunPath builds the travel surface described by cfg and finds a path
// between the configured start and goal locations, writing the result
// to the configured output file. Finding no path is logged but is not
// an error.
func RunPath(cfg *viper.Viper) error {
	var keepIn geom.MultiPolygon
	if file := cfg.GetString("keepin"); file != "" {
		var err error
		if keepIn, err = parseGeometry(file); err != nil {
			return err
		}
	}
	var keepOut geom.MultiPolygon
	if file := cfg.GetString("keepout"); file != "" {
		var err error
		if keepOut, err = parseGeometry(file); err != nil {
			return err
		}
	}
	tolerance, err := cast.ToFloat64E(cfg.Get("tolerance"))
	if err != nil {
		return fmt.Errorf("traverse: invalid tolerance: %v", err)
	}
	start, err := parsePoint(cfg.GetString("start"))
	if err != nil {
		return err
	}
	goal, err := parsePoint(cfg.GetString("goal"))
	if err != nil {
		return err
	}

	begin := time.Now()
	surface, err := traverse.NewSurface(keepIn, keepOut, tolerance)
	if err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"rings":   len(surface.Vertices()),
		"seconds": time.Since(begin).Seconds(),
	}).Info("built travel surface")

	begin = time.Now()
	path := surface.FindPath(start, goal, nil)
	if path == nil {
		Log.WithFields(logrus.Fields{
			"start": fmt.Sprintf("%g,%g", start.X, start.Y),
			"goal":  fmt.Sprintf("%g,%g", goal.X, goal.Y),
		}).Info("no path found")
		return nil
	}
	Log.WithFields(logrus.Fields{
		"points":  len(path),
		"length":  path.Length(),
		"seconds": time.Since(begin).Seconds(),
	}).Info("found path")

	return writePath(path, cfg.GetString("output"))
}
