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

// Command traverse is a command-line interface for the Traverse travel
// path planner.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/traverse/traverseutil"
)

func main() {
	if err := traverseutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
