// Package errors provides typed error values for sessiontrail.
//
// Sentinel errors let callers handle specific conditions with errors.Is()
// rather than string matching.
//
// Return errors from internal packages:
//
//	if root == "" {
//	    return nil, errors.ErrProjectNotInitialized
//	}
//
// Handle them in the CLI layer:
//
//	result, err := workflows.Log(ctx, opts)
//	if errors.Is(err, kerrors.ErrProjectNotInitialized) {
//	    // Show user-friendly message, exit zero.
//	}
//
// Note that the hook command does not use these: its contract is to
// swallow every failure, so it reports outcomes instead of errors.
package errors
