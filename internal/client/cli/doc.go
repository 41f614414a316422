// Package cli implements the interactive terminal client of QR Studio.
//
// The REPL edits a single QR form (content, colors, geometry, format, logo,
// sticker); every accepted edit re-arms a debounce and the preview
// regenerates once edits quiet down, landing in a temp file whose path the
// 'show' command prints. 'download' saves the QR in the true target format,
// re-requesting document formats from the backend under a bounded retry
// policy. Account commands persist the session across runs.
package cli
