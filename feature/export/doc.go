// Package export implements the export download pipeline.
//
// The Downloader asks the remote service to generate a compiled translation
// export for a language and format, fetches the resulting artifact, and
// writes it atomically to a destination path (temp file plus rename, so
// partial writes never land). The Publisher optionally uploads the same
// artifact to an object-storage bucket for CDN serving.
package export
