/*
 * config_test.go, part of gogist.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[grid]
origin = [10.0, 12.5, -3.0]
dims = [40, 30, 20]

[entropy]
frames = 100
temperature = 310.0
`

func TestReadConfig(Te *testing.T) {
	c, err := ReadConfig(strings.NewReader(testConfig))
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{10, 12.5, -3}, c.Grid.Origin)
	assert.Equal(Te, [3]int{40, 30, 20}, c.Grid.Dims)
	assert.Equal(Te, VoxelEdge, c.Grid.Spacing)
	assert.Equal(Te, 100, c.Entropy.Frames)
	assert.Equal(Te, 310.0, c.Entropy.Temperature)
	assert.Equal(Te, DefaultParams().RefDensity, c.Entropy.RefDensity)
	assert.InDelta(Te, 0.125, c.Entropy.VoxelVolume, 1e-12)
	require.NoError(Te, c.Entropy.Validate())
	g, err := c.NewGrid()
	require.NoError(Te, err)
	assert.Equal(Te, 24000, g.Len())
	assert.Equal(Te, [3]float64{20, 15, 10}, g.Max)

	_, err = ReadConfig(strings.NewReader("[grid\norigin = 3"))
	assert.Error(Te, err)
}

func TestReadConfigFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "gist.toml")
	conf := testConfig + "\n" + `
[grid]
spacing = 1.0
max = [5.0, 5.0, 5.0]
`
	//a repeated table is a TOML error.
	require.NoError(Te, os.WriteFile(name, []byte(conf), 0o644))
	_, err := ReadConfigFile(name)
	assert.Error(Te, err)

	conf = strings.Replace(testConfig, "dims = [40, 30, 20]", "dims = [4, 4, 4]\nspacing = 1.0\nmax = [3.0, 3.0, 3.0]", 1)
	require.NoError(Te, os.WriteFile(name, []byte(conf), 0o644))
	c, err := ReadConfigFile(name)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, c.Entropy.VoxelVolume, 1e-12)
	g, err := c.NewGrid()
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{3, 3, 3}, g.Max)
	_, ok := g.Voxel([3]float64{13.5, 12.6, -2})
	assert.False(Te, ok)

	_, err = ReadConfigFile(filepath.Join(Te.TempDir(), "missing.toml"))
	assert.Error(Te, err)
}
