// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package incremental

import "strconv"

// String-map keys. These names are a cross-process wire contract shared
// with other producers of incremental-compilation configuration.
//
// WARNING: DO NOT rename entries below. A renamed key makes configuration
// written by an older producer silently fall back to its default, a
// backwards incompatible change.
const (
	transitiveStepKey       = "transitiveStep"
	recompileAllFractionKey = "recompileAllFraction"
	relationsDebugKey       = "relationsDebug"
	apiDebugKey             = "apiDebug"
	apiDumpDirectoryKey     = "apiDumpDirectory"
	apiDiffContextSizeKey   = "apiDiffContextSize"
	recompileOnMacroDefKey  = "recompileOnMacroDef"
	nameHashingKey          = "nameHashing"
	antStyleKey             = "antStyle"
)

// ToStringMap encodes the configuration as a flat string-keyed mapping,
// for transport across boundaries where only strings are exchangeable.
// Every field is encoded except two: the manager factory, which has no
// textual form (FromStringMap always supplies the canonical
// delete-immediately factory), and the API dump directory when it is
// unset, whose key is omitted entirely rather than encoded as an empty
// string.
func (o Options) ToStringMap() map[string]string {
	m := map[string]string{
		transitiveStepKey:       strconv.Itoa(o.transitiveStep),
		recompileAllFractionKey: strconv.FormatFloat(o.recompileAllFraction, 'g', -1, 64),
		relationsDebugKey:       strconv.FormatBool(o.relationsDebug),
		apiDebugKey:             strconv.FormatBool(o.apiDebug),
		apiDiffContextSizeKey:   strconv.Itoa(o.apiDiffContextSize),
		recompileOnMacroDefKey:  strconv.FormatBool(o.recompileOnMacroDef),
		nameHashingKey:          strconv.FormatBool(o.nameHashing),
		antStyleKey:             strconv.FormatBool(o.antStyle),
	}
	if o.apiDumpDirectory != "" {
		m[apiDumpDirectoryKey] = o.apiDumpDirectory
	}
	return m
}

// FromStringMap decodes a configuration from a flat string-keyed mapping.
// Absent keys fall back to Default's value for the field; keys that are
// not part of the contract are ignored. A value that does not parse as
// the field's type fails with ErrMalformedValue naming the key, and a
// decoded configuration selecting both antStyle and nameHashing fails
// with ErrInvalidConfiguration, exactly as construction does.
func FromStringMap(m map[string]string) (Options, error) {
	o := Default
	var err error
	if v, ok := m[transitiveStepKey]; ok {
		if o.transitiveStep, err = strconv.Atoi(v); err != nil {
			return Options{}, errMalformedValue(transitiveStepKey, v, err)
		}
	}
	if v, ok := m[recompileAllFractionKey]; ok {
		if o.recompileAllFraction, err = strconv.ParseFloat(v, 64); err != nil {
			return Options{}, errMalformedValue(recompileAllFractionKey, v, err)
		}
	}
	if v, ok := m[relationsDebugKey]; ok {
		if o.relationsDebug, err = strconv.ParseBool(v); err != nil {
			return Options{}, errMalformedValue(relationsDebugKey, v, err)
		}
	}
	if v, ok := m[apiDebugKey]; ok {
		if o.apiDebug, err = strconv.ParseBool(v); err != nil {
			return Options{}, errMalformedValue(apiDebugKey, v, err)
		}
	}
	if v, ok := m[apiDiffContextSizeKey]; ok {
		if o.apiDiffContextSize, err = strconv.Atoi(v); err != nil {
			return Options{}, errMalformedValue(apiDiffContextSizeKey, v, err)
		}
	}
	if v, ok := m[apiDumpDirectoryKey]; ok {
		o.apiDumpDirectory = v
	}
	if v, ok := m[recompileOnMacroDefKey]; ok {
		if o.recompileOnMacroDef, err = strconv.ParseBool(v); err != nil {
			return Options{}, errMalformedValue(recompileOnMacroDefKey, v, err)
		}
	}
	if v, ok := m[nameHashingKey]; ok {
		if o.nameHashing, err = strconv.ParseBool(v); err != nil {
			return Options{}, errMalformedValue(nameHashingKey, v, err)
		}
	}
	if v, ok := m[antStyleKey]; ok {
		if o.antStyle, err = strconv.ParseBool(v); err != nil {
			return Options{}, errMalformedValue(antStyleKey, v, err)
		}
	}
	return o.derive()
}
