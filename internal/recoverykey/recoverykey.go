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

// Package recoverykey parses firmware recovery keys of the form
// 203c-d001-xxxx-xxxx-xxxx-xxxx and derives the unlock password for them.
package recoverykey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/canonical/bios-unlock-password/internal/jamcrc"
)

const (
	keyPrefix0 = "203c"
	keyPrefix1 = "d001"

	numGroups = 4
)

// ErrInvalidKey is returned from ParseRecoveryKey when the supplied string
// is not a valid recovery key.
var ErrInvalidKey = errors.New("invalid key")

// RecoveryKey corresponds to the 64 bits of key material encoded in the
// last four groups of a recovery key.
type RecoveryKey struct {
	v uint64
}

// ParseRecoveryKey parses s as a recovery key. The first two groups must be
// 203c and d001, and each of the following four groups must be a
// hexadecimal value that fits in 16 bits. Anything after the sixth group
// is ignored. The caller is responsible for trimming whitespace.
func ParseRecoveryKey(s string) (RecoveryKey, error) {
	tokens := strings.Split(s, "-")

	if tokens[0] != keyPrefix0 {
		log.Debugln("recovery key has an unexpected first group")
		return RecoveryKey{}, ErrInvalidKey
	}
	if len(tokens) < 2 || tokens[1] != keyPrefix1 {
		log.Debugln("recovery key has an unexpected second group")
		return RecoveryKey{}, ErrInvalidKey
	}

	var v uint64
	for i := 0; i < numGroups; i++ {
		if len(tokens) < i+3 {
			log.Debugln("recovery key has", i, "groups, expected", numGroups)
			return RecoveryKey{}, ErrInvalidKey
		}
		x, err := strconv.ParseUint(tokens[i+2], 16, 16)
		if err != nil {
			log.WithError(err).Debugln("cannot parse group", i)
			return RecoveryKey{}, ErrInvalidKey
		}
		v = v<<16 | x
	}

	if len(tokens) > numGroups+2 {
		log.Debugln("ignoring", len(tokens)-numGroups-2, "trailing groups in recovery key")
	}

	return RecoveryKey{v: v}, nil
}

// Uint64 returns the key material as a single integer, with the first
// group in the most significant bits.
func (k RecoveryKey) Uint64() uint64 {
	return k.v
}

// String returns the canonical form of the key, which ParseRecoveryKey
// accepts.
func (k RecoveryKey) String() string {
	return fmt.Sprintf("%s-%s-%04x-%04x-%04x-%04x", keyPrefix0, keyPrefix1,
		uint16(k.v>>48), uint16(k.v>>32), uint16(k.v>>16), uint16(k.v))
}

// Password returns the unlock password for this key. This is the JAMCRC
// checksum of the 16 digit hex representation of the key material, as
// unpadded lowercase hex.
func (k RecoveryKey) Password() string {
	sum := jamcrc.Checksum([]byte(fmt.Sprintf("%016x", k.v)))
	return strconv.FormatUint(uint64(sum), 16)
}
