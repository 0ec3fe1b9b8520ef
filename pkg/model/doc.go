// Package model holds the in-memory representation of an interactive
// snippet: literal text interleaved with user-fillable fields
// (placeholders, choices), mirrors of those fields, and program-filled
// fragments (environment variables, shell command output).
//
// The package deliberately contains no parser. Whatever syntax a snippet
// body is written in, translating it into Segments is the job of an
// external collaborator; this keeps the model unopinionated about snippet
// syntax while the segment kinds here stay stable.
//
// The model is single-threaded and synchronous. Nodes are shared through
// ordinary pointers: a *Placeholder held by a Tab, a body Segment and a
// mirror all observe the same mutations. Nothing here takes locks, and
// resolver callbacks must not mutate the node they are resolving.
package model
