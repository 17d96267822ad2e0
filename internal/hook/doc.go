// Package hook dispatches one host lifecycle notification per invocation.
//
// The host process invokes `sessiontrail hook` with a JSON payload on
// stdin for every event it emits. Only SessionStart and SessionEnd
// produce records; everything else is a silent skip.
//
// The dispatcher reports its terminal state as an explicit Outcome value
// instead of an error chain, because the process exit contract is the
// same for every path: a fire-and-forget observability hook must never
// be the reason its host fails, so all failures converge on a successful
// exit with at most a note on stderr.
package hook
