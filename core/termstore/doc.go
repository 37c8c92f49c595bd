// Package termstore provides the client for the remote translation-management
// service that tracks localization terms per project.
//
// # Store Interface
//
// The Store interface abstracts the remote service, making it easy to mock
// term interactions for unit testing (as seen in core/termstore/mocks).
//
// # Operations
//
//   - ListTerms: Returns all terms registered for a language.
//   - AddTerms / DeleteTerms: Mutate the remote term list and report effect
//     counts (requested vs parsed vs succeeded) for verification upstream.
//   - RequestExport: Asks the service to generate a compiled export and
//     returns the download URL once generation completes.
//   - FetchExport: Downloads the artifact bytes from that URL.
//
// # Error Classification
//
// Network-level failures surface as *TransportError. Well-formed HTTP
// responses that are unusable (non-2xx status, schema mismatch) surface as
// *RemoteError. Callers can distinguish the two with errors.As.
//
// # Usage
//
//	store, err := termstore.NewClient(cfg)
//	terms, err := store.ListTerms(ctx, "en")
package termstore
