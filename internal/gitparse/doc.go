// Package gitparse converts raw git output into typed records.
//
// Every parser in this package is a pure function: text in, structured
// data out. Nothing here performs I/O, invokes a process, or holds state
// between calls, which makes the package safe to use from any number of
// goroutines without coordination.
//
// # Parsers
//
//   - [ParseDiff]: unified diff text into per-file change records
//   - [ParseHunkHeader]: a single "@@ -a,b +c,d @@" header into its ranges
//   - [ParseStatus]: porcelain status lines into aggregate counters
//   - [ParseCommitLog]: separator-delimited log output into commit records
//
// # Error Handling
//
// No parser returns an error. Malformed input degrades locally: an
// unparsable hunk header skips that hunk, a commit record with too few
// fields is dropped, an unrecognized status code counts toward nothing.
// Callers always get a usable (possibly empty) result and own it outright.
//
// # Pinned Formats
//
// The parsers match specific git invocations byte for byte. [LogFormat]
// must be passed verbatim to "git log --format="; diffs are expected from
// plain "git diff"/"git show" with rename detection; status input is the
// two-column --porcelain listing. Changing an invocation without changing
// the parser (or vice versa) breaks both.
package gitparse
