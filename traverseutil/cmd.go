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

// Package traverseutil provides configuration and command-line glue for
// the Traverse travel path planner.
package traverseutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/traverse"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Traverse.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "keepin",
			usage: `
              keepin is the path to a GeoJSON file holding the area the tool
              is permitted to travel within, as a Polygon or MultiPolygon.
              If it is left empty the travel surface is unbounded.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{pathCmd.Flags()},
		},
		{
			name: "keepout",
			usage: `
              keepout is the path to a GeoJSON file holding the obstacle
              areas the tool must avoid, as a Polygon or MultiPolygon.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{pathCmd.Flags()},
		},
		{
			name: "tolerance",
			usage: `
              tolerance is the clearance distance between the planned path
              and the keep-in and keep-out boundaries, in the units of the
              input geometry. It must be positive.`,
			defaultVal: 0.01,
			flagsets:   []*pflag.FlagSet{pathCmd.Flags()},
		},
		{
			name: "start",
			usage: `
              start is the beginning of the travel move, as 'x,y'.`,
			defaultVal: "0,0",
			flagsets:   []*pflag.FlagSet{pathCmd.Flags()},
		},
		{
			name: "goal",
			usage: `
              goal is the end of the travel move, as 'x,y'.`,
			defaultVal: "0,0",
			flagsets:   []*pflag.FlagSet{pathCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output is the path the found route is written to as a GeoJSON
              LineString.`,
			shorthand:  "o",
			defaultVal: "traverse_path.json",
			flagsets:   []*pflag.FlagSet{pathCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("TRAVERSE")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(pathCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("traverse: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "traverse",
	Short: "A travel path planner for cutting tools.",
	Long: `Traverse computes collision-free travel moves for a cutting tool,
keeping the tool inside a keep-in area and outside keep-out areas.
Use the subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'TRAVERSE_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Traverse.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Traverse v%s\n", traverse.Version)
	},
	DisableAutoGenTag: true,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Find a collision-free travel path.",
	Long: `path builds the travel surface from the keep-in and keep-out
geometry, searches for the shortest collision-free route from the start
location to the goal location, and writes the route to the output file
as a GeoJSON LineString. Finding no route is reported but is not an
error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunPath(Cfg)
	},
	DisableAutoGenTag: true,
}
