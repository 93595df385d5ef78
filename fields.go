/*
 * fields.go, part of gogist.
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

//Columns of the full GIST output table, one row per voxel.
const (
	FieldIndex = iota
	FieldX
	FieldY
	FieldZ
	FieldNWat
	FieldGO
	FieldGH
	FieldTSTransDens
	FieldTSTransNorm
	FieldTSOrientDens
	FieldTSOrientNorm
	FieldTSSixDens
	FieldTSSixNorm
	FieldESwDens
	FieldESwNorm
	FieldEWwDens
	FieldEWwNorm
	FieldEWwNbrDens
	FieldEWwNbrNorm
	FieldNNbrDens
	FieldNNbrNorm
	FieldFHbDens
	FieldFHbNorm
	FieldNHbSwDens
	FieldNHbSwNorm
	FieldNHbWwDens
	FieldNHbWwNorm
	FieldNDonSwDens
	FieldNDonSwNorm
	FieldNAccSwDens
	FieldNAccSwNorm
	FieldNDonWwDens
	FieldNDonWwNorm
	FieldNAccWwDens
	FieldNAccWwNorm
	NumFields
)

//Titles holds the header of each column of the GIST output table.
var Titles = [NumFields]string{
	"index", "x", "y", "z",
	"N_wat", "g_O", "g_H",
	"TS_tr_dens", "TS_tr_norm",
	"TS_or_dens", "TS_or_norm",
	"dTSsix-dens", "dTSsix_norm",
	"E_sw_dens", "E_sw_norm", "E_ww_dens", "Eww_norm",
	"E_ww_nbr_dens", "E_ww_nbr_norm",
	"N_nbr_dens", "N_nbr_norm",
	"f_hb_dens", "f_hb_norm",
	"N_hb_sw_dens", "N_hb_sw_norm", "N_hb_ww_dens", "N_hb_ww_norm",
	"N_don_sw_dens", "N_don_sw_norm", "N_acc_sw_dens", "N_acc_sw_norm",
	"N_don_ww_dens", "N_don_ww_norm", "N_acc_ww_dens", "N_acc_ww_norm",
}

//TableFields is the number of columns in the table produced by (*Grid).Table.
//They are the first TableFields columns of the full GIST table, the only ones
//this package fills.
const TableFields = FieldTSSixNorm + 1
