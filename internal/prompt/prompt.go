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

package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// Prompter reads lines of user input from in, writing any messages to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes a message to the prompter's output.
func (p *Prompter) Printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(p.out, format, a...)
	return err
}

// ReadLine reads a single line of input, without the line terminator. If
// the input ends before a line terminator, the partial line is returned.
// io.EOF is only returned if there is no more input.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return "", io.EOF
	case err != nil && err != io.EOF:
		return "", xerrors.Errorf("cannot read input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// WaitForEnter writes msg to w and then consumes a line of input. Reaching
// the end of the input is not an error.
func (p *Prompter) WaitForEnter(w io.Writer, msg string) error {
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return err
	}
	if _, err := p.ReadLine(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// IsTerminal indicates whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	if err != nil {
		log.WithError(err).Debugln("fd", fd, "is not a terminal")
	}
	return err == nil
}
