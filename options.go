// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"github.com/go-logr/logr"

	"github.com/tjemerson/marc21/internal/marclog"
)

// ToleranceMode selects how strictly the Reader enforces the two
// implementation-defined tolerances called out in spec.md §4.1/§9: a
// field slice missing its trailing FT, and a non-empty leading segment
// before a DataField's first subfield delimiter.
type ToleranceMode int

const (
	// Lenient accepts both deviations, per spec.md's MUST-tolerate
	// requirements for the rest of the tolerance policy. This is the
	// default.
	Lenient ToleranceMode = iota
	// Strict fails MalformedField on a missing trailing FT and treats a
	// non-empty leading segment as MalformedField as well, for callers
	// validating a record producer rather than consuming arbitrary
	// real-world files.
	Strict
)

type readerOpts struct {
	charsetName string
	hasCharset  bool
	override    bool
	tolerance   ToleranceMode
	logger      marclog.Logger
}

func defaultOpts() readerOpts {
	return readerOpts{tolerance: Lenient, logger: marclog.Discard()}
}

// Option configures a Reader at construction time, the functional-options
// shape grailbio-bio/encoding/fasta uses for Opt and rstms-iso-kit/pkg/
// option uses for OpenOption.
type Option func(*readerOpts)

// WithCharsetName names a charset ("utf-8", "iso-8859-1", or any name the
// platform charset registry resolves) to decode with in place of the one
// inferred from the leader. On its own it is used only when it names the
// same scheme the leader implies (UTF-8 for 'a', MARC-8 otherwise);
// combined with WithOverride(true) it is used even when it contradicts the
// leader's charCodingScheme.
func WithCharsetName(name string) Option {
	return func(o *readerOpts) {
		o.charsetName = name
		o.hasCharset = true
	}
}

// WithOverride sets the override flag from spec.md §6: when true and a
// charset name has been set via WithCharsetName, that charset is used
// even if it contradicts the leader.
func WithOverride(override bool) Option {
	return func(o *readerOpts) {
		o.override = override
	}
}

// WithToleranceMode selects Lenient (default) or Strict handling of the
// two implementation-defined tolerances.
func WithToleranceMode(mode ToleranceMode) Option {
	return func(o *readerOpts) {
		o.tolerance = mode
	}
}

// WithLogger attaches a logr.Logger the Reader uses to record tolerated
// deviations and failure causes. The default is a discarding logger.
func WithLogger(log logr.Logger) Option {
	return func(o *readerOpts) {
		o.logger = marclog.New(log)
	}
}
