// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package incremental holds the tunable parameters that govern how
// aggressively, and by which algorithm, a build tool decides what to
// recompile after a source change. The package is the options model only;
// the invalidation algorithm consuming it lives elsewhere and reaches back
// into this package solely through the ManagerFactory hook.
package incremental

import (
	"github.com/cockroachdb/redact"
)

// Options is an immutable record of compilation-control parameters.
//
// An Options value in hand is always a legal configuration: construction
// through New or FromStringMap is validated, and the With* derivations
// re-validate before returning. The zero value is not meaningful; start
// from Default.
type Options struct {
	// transitiveStep is the step count after which invalidation widens to
	// the full transitive closure of affected files.
	transitiveStep int
	// recompileAllFraction is the fraction of invalidated sources above
	// which incremental compilation is abandoned in favor of recompiling
	// everything.
	recompileAllFraction float64
	// relationsDebug emits verbose dependency-relation diagnostics.
	relationsDebug bool
	// apiDebug enables API-change debugging aids.
	apiDebug bool
	// apiDiffContextSize is the number of context lines shown around API
	// diffs. Meaningful only when apiDebug is set.
	apiDiffContextSize int
	// apiDumpDirectory is the directory textual API representations are
	// dumped to. Empty means no dumping. Meaningful only when apiDebug is
	// set.
	apiDumpDirectory string
	// managerFactory produces the classfile manager for each incremental
	// run. It has no textual form and never crosses the string-map
	// boundary.
	managerFactory ManagerFactory
	// recompileOnMacroDef forces dependents of macro definitions to
	// recompile.
	recompileOnMacroDef bool
	// nameHashing selects the name-hashing invalidation algorithm over the
	// legacy algorithm. Mutually exclusive with antStyle.
	nameHashing bool
	// antStyle recompiles only literally-changed files, with no dependency
	// invalidation. Mutually exclusive with nameHashing.
	antStyle bool
}

// Default is the canonical configuration: name-hashing invalidation that
// widens to the transitive closure after 3 steps, gives up on incremental
// compilation once half the sources are invalidated, and deletes stale
// classfiles immediately. It is initialized at package load and must not
// be treated as anything but read-only.
var Default = Options{
	transitiveStep:       3,
	recompileAllFraction: 0.5,
	apiDiffContextSize:   5,
	managerFactory:       DeleteImmediatelyFactory{},
	recompileOnMacroDef:  true,
	nameHashing:          true,
}

// New constructs an Options with every field specified. It fails with
// ErrInvalidConfiguration if antStyle and nameHashing are both set; the
// two select conflicting invalidation algorithms. An empty
// apiDumpDirectory means no dump directory is configured.
func New(
	transitiveStep int,
	recompileAllFraction float64,
	relationsDebug bool,
	apiDebug bool,
	apiDiffContextSize int,
	apiDumpDirectory string,
	managerFactory ManagerFactory,
	recompileOnMacroDef bool,
	nameHashing bool,
	antStyle bool,
) (Options, error) {
	o := Options{
		transitiveStep:       transitiveStep,
		recompileAllFraction: recompileAllFraction,
		relationsDebug:       relationsDebug,
		apiDebug:             apiDebug,
		apiDiffContextSize:   apiDiffContextSize,
		apiDumpDirectory:     apiDumpDirectory,
		managerFactory:       managerFactory,
		recompileOnMacroDef:  recompileOnMacroDef,
		nameHashing:          nameHashing,
		antStyle:             antStyle,
	}
	return o.derive()
}

func (o Options) validate() error {
	if o.antStyle && o.nameHashing {
		return errInvalidConfiguration()
	}
	return nil
}

// derive finalizes a candidate configuration, re-checking the invariant.
// The receiver is already a copy, so derivations never touch the source
// value.
func (o Options) derive() (Options, error) {
	if err := o.validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// TransitiveStep returns the step count after which invalidation widens to
// the full transitive closure of affected files.
func (o Options) TransitiveStep() int { return o.transitiveStep }

// RecompileAllFraction returns the fraction of invalidated sources above
// which the tool abandons incremental compilation.
func (o Options) RecompileAllFraction() float64 { return o.recompileAllFraction }

// RelationsDebug reports whether verbose dependency-relation diagnostics
// are enabled.
func (o Options) RelationsDebug() bool { return o.relationsDebug }

// APIDebug reports whether API-change debugging aids are enabled.
func (o Options) APIDebug() bool { return o.apiDebug }

// APIDiffContextSize returns the number of context lines shown around API
// diffs.
func (o Options) APIDiffContextSize() int { return o.apiDiffContextSize }

// APIDumpDirectory returns the directory textual API representations are
// dumped to, and whether one is configured.
func (o Options) APIDumpDirectory() (string, bool) {
	return o.apiDumpDirectory, o.apiDumpDirectory != ""
}

// ManagerFactory returns the factory the incremental run uses to obtain
// its classfile manager.
func (o Options) ManagerFactory() ManagerFactory { return o.managerFactory }

// RecompileOnMacroDef reports whether dependents of macro definitions are
// forced to recompile.
func (o Options) RecompileOnMacroDef() bool { return o.recompileOnMacroDef }

// NameHashing reports whether the name-hashing invalidation algorithm is
// selected.
func (o Options) NameHashing() bool { return o.nameHashing }

// AntStyle reports whether the naive changed-files-only mode is selected.
func (o Options) AntStyle() bool { return o.antStyle }

// WithTransitiveStep derives an Options with the transitive step replaced.
func (o Options) WithTransitiveStep(steps int) (Options, error) {
	o.transitiveStep = steps
	return o.derive()
}

// WithRecompileAllFraction derives an Options with the recompile-all
// fraction replaced.
func (o Options) WithRecompileAllFraction(fraction float64) (Options, error) {
	o.recompileAllFraction = fraction
	return o.derive()
}

// WithRelationsDebug derives an Options with relation diagnostics toggled.
func (o Options) WithRelationsDebug(debug bool) (Options, error) {
	o.relationsDebug = debug
	return o.derive()
}

// WithAPIDebug derives an Options with API debugging toggled.
func (o Options) WithAPIDebug(debug bool) (Options, error) {
	o.apiDebug = debug
	return o.derive()
}

// WithAPIDiffContextSize derives an Options with the API diff context size
// replaced.
func (o Options) WithAPIDiffContextSize(lines int) (Options, error) {
	o.apiDiffContextSize = lines
	return o.derive()
}

// WithAPIDumpDirectory derives an Options with the API dump directory
// replaced. An empty dir clears it.
func (o Options) WithAPIDumpDirectory(dir string) (Options, error) {
	o.apiDumpDirectory = dir
	return o.derive()
}

// WithManagerFactory derives an Options with the classfile-manager factory
// replaced.
func (o Options) WithManagerFactory(factory ManagerFactory) (Options, error) {
	o.managerFactory = factory
	return o.derive()
}

// WithRecompileOnMacroDef derives an Options with macro-dependent
// recompilation toggled.
func (o Options) WithRecompileOnMacroDef(recompile bool) (Options, error) {
	o.recompileOnMacroDef = recompile
	return o.derive()
}

// WithNameHashing derives an Options with the name-hashing algorithm
// selected or deselected. Selecting it while antStyle is set fails with
// ErrInvalidConfiguration; the conflicting flag is never cleared silently.
func (o Options) WithNameHashing(enabled bool) (Options, error) {
	o.nameHashing = enabled
	return o.derive()
}

// WithAntStyle derives an Options with the ant-style mode selected or
// deselected. Selecting it while nameHashing is set fails with
// ErrInvalidConfiguration; the conflicting flag is never cleared silently.
func (o Options) WithAntStyle(enabled bool) (Options, error) {
	o.antStyle = enabled
	return o.derive()
}

// Equal reports whether two configurations match field for field. The
// manager factory compares by identity, not by value: two factories are
// the same only if they are the same interface value. Factory
// implementations are expected to be pointers or empty structs so the
// comparison is well defined.
func (o Options) Equal(other Options) bool {
	return o.transitiveStep == other.transitiveStep &&
		o.recompileAllFraction == other.recompileAllFraction &&
		o.relationsDebug == other.relationsDebug &&
		o.apiDebug == other.apiDebug &&
		o.apiDiffContextSize == other.apiDiffContextSize &&
		o.apiDumpDirectory == other.apiDumpDirectory &&
		o.managerFactory == other.managerFactory &&
		o.recompileOnMacroDef == other.recompileOnMacroDef &&
		o.nameHashing == other.nameHashing &&
		o.antStyle == other.antStyle
}

// String returns a human-readable listing of every field, for diagnostics.
// It is not the transport encoding; FromStringMap does not parse it.
func (o Options) String() string {
	return redact.StringWithoutMarkers(o)
}

// SafeFormat implements redact.SafeFormatter.
func (o Options) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[Incremental Options]\n")
	w.Printf("  transitive_step=%d\n", redact.SafeInt(o.transitiveStep))
	w.Printf("  recompile_all_fraction=%v\n", redact.Safe(o.recompileAllFraction))
	w.Printf("  relations_debug=%v\n", redact.Safe(o.relationsDebug))
	w.Printf("  api_debug=%v\n", redact.Safe(o.apiDebug))
	w.Printf("  api_diff_context_size=%d\n", redact.SafeInt(o.apiDiffContextSize))
	w.Printf("  api_dump_directory=%s\n", o.apiDumpDirectory)
	w.Printf("  manager_factory=%v\n", redact.Safe(o.managerFactory))
	w.Printf("  recompile_on_macro_def=%v\n", redact.Safe(o.recompileOnMacroDef))
	w.Printf("  name_hashing=%v\n", redact.Safe(o.nameHashing))
	w.Printf("  ant_style=%v\n", redact.Safe(o.antStyle))
}
