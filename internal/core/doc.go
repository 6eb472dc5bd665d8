// Package core implements parsing against a flags.Schema.
//
// A parse runs in four steps over one State:
//
//	Match          records which arguments appear and captures their value tokens
//	CheckRequired  fails for an absent argument whose predicate holds
//	Materialize    turns captured tokens into values, or applies defaults
//	Release        hands every initialized value back to its releaser
//
// App strings those steps together with setup, run and teardown hooks and
// maps each outcome to an exit code.
package core
