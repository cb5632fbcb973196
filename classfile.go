// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package incremental

import (
	"github.com/cockroachdb/errors/oserror"
	"github.com/cockroachdb/pebble/vfs"
)

// ClassfileManager decides when compiled output files are deleted or
// replaced during a compilation run. The incremental-compilation
// algorithm obtains one manager per run from the configured
// ManagerFactory and drives it; the options model itself never invokes
// it.
type ClassfileManager interface {
	// Delete removes classfiles invalidated by the current run.
	Delete(fs vfs.FS, paths []string) error
	// Generated records classfiles produced by the current run.
	Generated(paths []string)
	// Complete ends the run. success reports whether compilation
	// succeeded, letting transactional managers decide between commit and
	// rollback.
	Complete(success bool) error
}

// ManagerFactory produces a fresh ClassfileManager. It is invoked once
// per incremental run.
type ManagerFactory interface {
	NewManager() ClassfileManager
}

// DeleteImmediatelyFactory produces managers that remove invalidated
// classfiles the moment they are reported, with no rollback on a failed
// run. It is the factory carried by Default, and the one FromStringMap
// supplies since factories have no textual form.
type DeleteImmediatelyFactory struct{}

// NewManager implements ManagerFactory.
func (DeleteImmediatelyFactory) NewManager() ClassfileManager {
	return deleteImmediately{}
}

func (DeleteImmediatelyFactory) String() string {
	return "delete-immediately"
}

type deleteImmediately struct{}

// Delete removes each classfile. Already-missing files are not an error;
// a prior run may have removed them.
func (deleteImmediately) Delete(fs vfs.FS, paths []string) error {
	for _, path := range paths {
		if err := fs.Remove(path); err != nil && !oserror.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (deleteImmediately) Generated([]string) {}

func (deleteImmediately) Complete(bool) error { return nil }
