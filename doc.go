// Package argtable parses command lines against a declarative table of
// arguments.
//
// A program lists every argument it accepts once, as a Descriptor in a
// Schema. The same table drives matching, typed value reading through
// per-argument hooks, required checks, resource release and help output:
//
//	var schema = argtable.MustSchema("Usage: count [options] files",
//		argtable.Descriptor{
//			Long:     "count",
//			Short:    "-c",
//			Arity:    1,
//			Required: argtable.Always,
//			Help:     "Number of lines to read",
//			Read:     readers.Int,
//		},
//	)
//
// Parse handles a single parse. Main runs an App, which also drives setup,
// run and teardown hooks and maps failures to exit codes: 110 for an
// invalid argument and 120 for a missing one.
//
// Help entries are wrapped to the width given by COLUMNS, 80 when unset.
package argtable
