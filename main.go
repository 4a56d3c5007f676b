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
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/canonical/bios-unlock-password/internal/logutil"
	"github.com/canonical/bios-unlock-password/internal/prompt"
)

var (
	Version = "v1.0.0"

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	stdinIsTerminal = func() bool {
		return prompt.IsTerminal(os.Stdin.Fd())
	}
)

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable verbose debug output"`
}

func newParser() *flags.Parser {
	opts := new(options)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if opts.Verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugln("Enabling verbose output")
		}

		log.Debugln("Version:", Version)
		log.Debugln("args:", strings.Join(os.Args, " "))

		return command.Execute(args)
	}

	if _, err := parser.AddCommand("derive", "Derive the unlock password for a recovery key",
		"Derive the unlock password for the supplied recovery key. If no key is supplied, "+
			"it is read interactively from the standard input.", &deriveOptions{}); err != nil {
		log.WithError(err).Panicln("cannot add derive command")
	}
	if _, err := parser.AddCommand("hints", "Show how to display the recovery key on a locked system", "", &hintsOptions{}); err != nil {
		log.WithError(err).Panicln("cannot add hints command")
	}

	return parser
}

func run(args []string) error {
	if len(args) == 0 {
		// With no arguments, behave as an interactive prompt.
		args = []string{"derive"}
	}

	if _, err := newParser().ParseArgs(args); err != nil {
		switch e := err.(type) {
		case *flags.Error:
			if e.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, err)
				return nil
			}
		}
		return err
	}

	return nil
}

func main() {
	logutil.Configure(log.StandardLogger(), os.Stdout, os.Stderr)

	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
