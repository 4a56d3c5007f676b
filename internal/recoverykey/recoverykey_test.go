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

package recoverykey_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/canonical/bios-unlock-password/internal/recoverykey"
)

func Test(t *testing.T) { check.TestingT(t) }

type recoveryKeySuite struct{}

var _ = check.Suite(&recoveryKeySuite{})

type testDerivePasswordData struct {
	key      string
	value    uint64
	password string
}

func (s *recoveryKeySuite) testDerivePassword(c *check.C, data *testDerivePasswordData) {
	key, err := recoverykey.ParseRecoveryKey(data.key)
	c.Assert(err, check.IsNil)
	c.Check(key.Uint64(), check.Equals, data.value)
	c.Check(key.Password(), check.Equals, data.password)
}

func (s *recoveryKeySuite) TestDerivePasswordShortKey(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-0000-001d-e960-227d",
		value:    0x0000001de960227d,
		password: "494eab7c"})
}

func (s *recoveryKeySuite) TestDerivePasswordKnownKey(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-4f30-609d-5125-646a",
		value:    0x4f30609d5125646a,
		password: "66b14918"})
}

func (s *recoveryKeySuite) TestDerivePasswordUppercase(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-4F30-609D-5125-646A",
		value:    0x4f30609d5125646a,
		password: "66b14918"})
}

func (s *recoveryKeySuite) TestDerivePasswordShortGroups(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-0-1d-e960-227d",
		value:    0x0000001de960227d,
		password: "494eab7c"})
}

func (s *recoveryKeySuite) TestDerivePasswordNoPadding(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-0000-0000-0000-0131",
		value:    0x131,
		password: "179df9"})
}

func (s *recoveryKeySuite) TestDerivePasswordZero(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-0000-0000-0000-0000",
		value:    0,
		password: "5dff949b"})
}

func (s *recoveryKeySuite) TestDerivePasswordIgnoresTrailingGroups(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-0000-001d-e960-227d-extra",
		value:    0x0000001de960227d,
		password: "494eab7c"})
}

func (s *recoveryKeySuite) TestDerivePasswordIgnoresTrailingEmptyGroup(c *check.C) {
	s.testDerivePassword(c, &testDerivePasswordData{
		key:      "203c-d001-0000-001d-e960-227d-",
		value:    0x0000001de960227d,
		password: "494eab7c"})
}

func (s *recoveryKeySuite) TestDerivePasswordIsDeterministic(c *check.C) {
	key, err := recoverykey.ParseRecoveryKey("203c-d001-4f30-609d-5125-646a")
	c.Assert(err, check.IsNil)
	for i := 0; i < 10; i++ {
		c.Check(key.Password(), check.Equals, "66b14918")
	}
}

func (s *recoveryKeySuite) TestRoundTrip(c *check.C) {
	values := []uint64{0, 1, 0xffffffffffffffff, 0x8000000000000000, 0x0001000200030004}
	for i := 0; i < 100; i++ {
		values = append(values, rand.Uint64())
	}

	for _, v := range values {
		str := fmt.Sprintf("203c-d001-%x-%x-%x-%x", uint16(v>>48), uint16(v>>32), uint16(v>>16), uint16(v))
		key, err := recoverykey.ParseRecoveryKey(str)
		c.Assert(err, check.IsNil, check.Commentf("key: %s", str))
		c.Check(key.Uint64(), check.Equals, v)

		// The canonical form parses to the same key.
		key2, err := recoverykey.ParseRecoveryKey(key.String())
		c.Assert(err, check.IsNil)
		c.Check(key2, check.Equals, key)
	}
}

func (s *recoveryKeySuite) TestString(c *check.C) {
	key, err := recoverykey.ParseRecoveryKey("203c-d001-0-1D-e960-227d-extra")
	c.Assert(err, check.IsNil)
	c.Check(key.String(), check.Equals, "203c-d001-0000-001d-e960-227d")
}

func (s *recoveryKeySuite) testParseInvalid(c *check.C, str string) {
	_, err := recoverykey.ParseRecoveryKey(str)
	c.Check(err, check.Equals, recoverykey.ErrInvalidKey, check.Commentf("key: %q", str))
	c.Check(errors.Is(err, recoverykey.ErrInvalidKey), check.Equals, true)
	c.Check(err, check.ErrorMatches, "invalid key")
}

func (s *recoveryKeySuite) TestParseInvalidFirstGroup(c *check.C) {
	s.testParseInvalid(c, "203d-d001-0000-0000-0000-0000")
}

func (s *recoveryKeySuite) TestParseInvalidSecondGroup(c *check.C) {
	s.testParseInvalid(c, "203c-d000-0000-0000-0000-0000")
}

func (s *recoveryKeySuite) TestParseInvalidPrefixCase(c *check.C) {
	s.testParseInvalid(c, "203C-D001-0000-0000-0000-0000")
}

func (s *recoveryKeySuite) TestParseInvalidEmpty(c *check.C) {
	s.testParseInvalid(c, "")
}

func (s *recoveryKeySuite) TestParseInvalidPrefixOnly(c *check.C) {
	s.testParseInvalid(c, "203c")
}

func (s *recoveryKeySuite) TestParseInvalidNoGroups(c *check.C) {
	s.testParseInvalid(c, "203c-d001")
}

func (s *recoveryKeySuite) TestParseInvalidTooFewGroups(c *check.C) {
	s.testParseInvalid(c, "203c-d001-0000-001d-e960")
}

func (s *recoveryKeySuite) TestParseInvalidNonHex(c *check.C) {
	s.testParseInvalid(c, "203c-d001-zzzz-001d-e960-227d")
}

func (s *recoveryKeySuite) TestParseInvalidEmptyGroup(c *check.C) {
	s.testParseInvalid(c, "203c-d001-0000--e960-227d")
}

func (s *recoveryKeySuite) TestParseInvalidOutOfRange(c *check.C) {
	s.testParseInvalid(c, "203c-d001-10000-001d-e960-227d")
}

func (s *recoveryKeySuite) TestParseInvalidSigned(c *check.C) {
	s.testParseInvalid(c, "203c-d001-+1-001d-e960-227d")
}

func (s *recoveryKeySuite) TestParseInvalidHexPrefix(c *check.C) {
	s.testParseInvalid(c, "203c-d001-0x1-001d-e960-227d")
}

func (s *recoveryKeySuite) TestParseInvalidWhitespace(c *check.C) {
	s.testParseInvalid(c, " 203c-d001-0000-001d-e960-227d\n")
}

func (s *recoveryKeySuite) TestParseInvalidTrailingWhitespace(c *check.C) {
	s.testParseInvalid(c, "203c-d001-0000-001d-e960-227d\n")
}
