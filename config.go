/*
 * config.go, part of gogist.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gist

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

//GridConfig describes a grid in a configuration file. Max is optional,
//if not given, the grid extends Dims*Spacing from the origin.
type GridConfig struct {
	Origin  [3]float64  `toml:"origin"`
	Dims    [3]int      `toml:"dims"`
	Spacing float64     `toml:"spacing"`
	Max     *[3]float64 `toml:"max"`
}

//Config is the content of a goGIST TOML configuration file, for instance:
//
//	[grid]
//	origin = [10.0, 12.5, -3.0]
//	dims = [40, 40, 40]
//
//	[entropy]
//	frames = 10000
//	ref_density = 0.0329
//	temperature = 300.0
type Config struct {
	Grid    GridConfig `toml:"grid"`
	Entropy Params     `toml:"entropy"`
}

//ReadConfig decodes a TOML configuration from r. Missing entropy parameters
//take the values in DefaultParams (except for the number of frames), and
//the voxel volume is always derived from the grid spacing if not given.
func ReadConfig(r io.Reader) (*Config, error) {
	c := &Config{Entropy: *DefaultParams()}
	c.Entropy.VoxelVolume = 0
	if _, err := toml.NewDecoder(r).Decode(c); err != nil {
		return nil, newErr(fmt.Sprintf("goGIST: Can't decode configuration: %s", err), "ReadConfig")
	}
	if c.Grid.Spacing == 0 {
		c.Grid.Spacing = VoxelEdge
	}
	if c.Entropy.VoxelVolume == 0 {
		s := c.Grid.Spacing
		c.Entropy.VoxelVolume = s * s * s
	}
	return c, nil
}

//ReadConfigFile is like ReadConfig, but takes the name of the file.
func ReadConfigFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newErr(fmt.Sprintf("goGIST: Can't open configuration: %s", err), "ReadConfigFile")
	}
	defer f.Close()
	c, err := ReadConfig(f)
	return c, errDecorate(err, "ReadConfigFile")
}

//NewGrid builds the grid the configuration describes.
func (c *Config) NewGrid() (*Grid, error) {
	g, err := NewGrid(c.Grid.Origin, c.Grid.Dims, c.Grid.Spacing)
	if err != nil {
		return nil, errDecorate(err, "Config.NewGrid")
	}
	if c.Grid.Max != nil {
		g.Max = *c.Grid.Max
	}
	return g, nil
}
