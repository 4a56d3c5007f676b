// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2021 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package jamcrc implements the CRC-32/JAMCRC checksum.
//
// JAMCRC shares its parameters with CRC-32/IEEE (reflected polynomial
// 0xEDB88320, initial value 0xFFFFFFFF, reflected input and output) but
// omits the final XOR, so every JAMCRC value is the bitwise complement of
// the corresponding IEEE value.
package jamcrc

import (
	"hash"
	"hash/crc32"
)

// The size of a JAMCRC checksum in bytes.
const Size = 4

type digest struct {
	// crc holds the running CRC-32/IEEE value, which is complemented on
	// output.
	crc uint32
}

// New creates a new hash.Hash32 computing the JAMCRC checksum.
func New() hash.Hash32 {
	return new(digest)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = crc32.Update(d.crc, crc32.IEEETable, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return ^d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Checksum returns the JAMCRC checksum of data.
func Checksum(data []byte) uint32 {
	return ^crc32.ChecksumIEEE(data)
}
