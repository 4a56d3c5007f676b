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
	"strings"

	log "github.com/sirupsen/logrus"

	"golang.org/x/xerrors"

	"github.com/canonical/bios-unlock-password/internal/prompt"
	"github.com/canonical/bios-unlock-password/internal/recoverykey"
)

type deriveOptions struct {
	NoPause bool `long:"no-pause" description:"Don't wait for Enter before exiting when prompting for the key"`

	Positional struct {
		Key string `positional-arg-name:"recovery-key" description:"Recovery key in the format 203c-d001-xxxx-xxxx-xxxx-xxxx"`
	} `positional-args:"true"`
}

func (o *deriveOptions) Execute(_ []string) error {
	if o.Positional.Key != "" {
		password, err := derivePassword(o.Positional.Key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, password)
		return err
	}

	return deriveInteractive(o)
}

func derivePassword(input string) (string, error) {
	key, err := recoverykey.ParseRecoveryKey(strings.TrimSpace(input))
	if err != nil {
		return "", xerrors.Errorf("cannot parse recovery key: %w", err)
	}
	log.Debugf("recovery key %s has key material %016x\n", key, key.Uint64())

	return key.Password(), nil
}

func deriveInteractive(opts *deriveOptions) error {
	p := prompt.NewPrompter(stdin, stdout)

	if err := writeHints(stdout); err != nil {
		return err
	}
	if err := p.Printf("\nEnter the recovery key in the format 203c-d001-xxxx-xxxx-xxxx-xxxx:\n"); err != nil {
		return err
	}

	line, err := p.ReadLine()
	if err != nil {
		return xerrors.Errorf("cannot read recovery key: %w", err)
	}

	password, err := derivePassword(line)
	if err != nil {
		return err
	}
	if err := p.Printf("Password: %s\n", password); err != nil {
		return err
	}

	if opts.NoPause || !stdinIsTerminal() {
		log.Debugln("not waiting for Enter")
		return nil
	}
	return p.WaitForEnter(stderr, "Press Enter to exit.")
}
