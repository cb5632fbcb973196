// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package incremental

import (
	"testing"

	"github.com/cockroachdb/errors/oserror"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/require"
)

func TestDeleteImmediately(t *testing.T) {
	mem := vfs.NewMem()
	for _, name := range []string{"A.class", "B.class"} {
		f, err := mem.Create(name)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	m := DeleteImmediatelyFactory{}.NewManager()

	// Deleting a mix of present and already-missing classfiles succeeds;
	// a prior run may have removed some of them.
	require.NoError(t, m.Delete(mem, []string{"A.class", "C.class"}))
	_, err := mem.Stat("A.class")
	require.True(t, oserror.IsNotExist(err))
	_, err = mem.Stat("B.class")
	require.NoError(t, err)

	m.Generated([]string{"B.class"})
	require.NoError(t, m.Complete(true))

	// Completion performs no rollback: B.class survives a failed run too.
	m = DeleteImmediatelyFactory{}.NewManager()
	require.NoError(t, m.Complete(false))
	_, err = mem.Stat("B.class")
	require.NoError(t, err)
}

func TestManagerFactoryPerRun(t *testing.T) {
	f := &recordingFactory{}
	o, err := Default.WithManagerFactory(f)
	require.NoError(t, err)

	// The algorithm asks the configured factory for one manager per run.
	for i := 0; i < 3; i++ {
		require.NotNil(t, o.ManagerFactory().NewManager())
	}
	require.Equal(t, 3, f.managers)
}
