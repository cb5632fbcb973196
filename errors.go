// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package incremental

import "github.com/cockroachdb/errors"

// ErrInvalidConfiguration marks configurations that violate the
// antStyle/nameHashing mutual exclusion. It is returned by New, by every
// With* derivation and by FromStringMap; test for it with errors.Is.
var ErrInvalidConfiguration = errors.New("incremental: invalid configuration")

// ErrMalformedValue marks string-map values that do not parse as the
// corresponding field's type. The error message names the offending key.
var ErrMalformedValue = errors.New("incremental: malformed value")

func errInvalidConfiguration() error {
	return errors.Mark(
		errors.New("incremental: antStyle and nameHashing are mutually exclusive"),
		ErrInvalidConfiguration)
}

func errMalformedValue(key, value string, err error) error {
	return errors.Mark(
		errors.Wrapf(err, "incremental: malformed value %q for %q", value, errors.Safe(key)),
		ErrMalformedValue)
}
