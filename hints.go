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

package main

import (
	"fmt"
	"io"
)

// Sets of passwords which, entered in order at the firmware password
// prompt, make a locked system display its recovery key.
var masterPasswordSets = []struct {
	description string
	passwords   []string
}{
	{
		description: "For most models they are:",
		passwords:   []string{"23fbb82a", "d2f65c29", "ca3db92a"},
	},
	{
		description: "However some models and BIOS versions might need these instead:",
		passwords:   []string{"3hqgo3", "jqw534", "0qww294e"},
	},
}

type hintsOptions struct{}

func (o *hintsOptions) Execute(_ []string) error {
	return writeHints(stdout)
}

func writeHints(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "In order to see the recovery key in the form of `203c-d001-xxxx-xxxx-xxxx-xxxx` "+
		"you have to enter three specific passwords in the right order."); err != nil {
		return err
	}

	for _, set := range masterPasswordSets {
		if _, err := fmt.Fprintln(w, set.description); err != nil {
			return err
		}
		for _, p := range set.passwords {
			if _, err := fmt.Fprintf(w, "- `%s` -\n", p); err != nil {
				return err
			}
		}
	}

	return nil
}
