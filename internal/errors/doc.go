// Package errors provides the structured error type used across the notebook.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. The codes that matter to callers are:
//   - NotFound: an operation referenced an unknown champion, item or
//     component. Recoverable; the session reports it and keeps running.
//   - FailedPrecondition: an action needs state that is not there yet, for
//     example assigning an item with no focused champion.
//   - Ingestion: the game-data document is malformed. Fatal to startup.
//   - Persistence: the build state could not be written. Reported as a
//     failed save.
//   - Unavailable: the remote data source could not be reached.
//
// # Basic Usage
//
//	err := errors.NotFoundf("champion %s not found", name)
//	err := errors.Ingestion("setData missing").WithMeta("key", "setData")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save build state")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // report and continue
//	}
package errors
