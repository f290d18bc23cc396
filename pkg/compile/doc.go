// Package compile turns an assembled LaTeX document into a viewable artifact.
//
// # Pipeline
//
// A [Runner] drives one compilation through four states:
//
//	Assembled ──► Dispatched ──► Succeeded
//	                  │
//	                  └────────► Failed
//
// The document is handed to a [Strategy] inside a freshly prepared scratch
// [Workspace]. Two strategies are provided:
//
//   - [External] writes the source to figure.tex and runs a TeX engine as a
//     subprocess: engine -interaction=batchmode -halt-on-error
//     -jobname=figure figure.tex. The engine's stdout and stderr are
//     discarded; only its exit status is inspected.
//   - [Embedded] calls an in-process compiler function and writes the
//     returned bytes to figure.<ext>. [StarTeX] is an embedded plain TeX
//     engine producing DVI.
//
// After dispatch the Runner checks that the artifact exists and is not empty,
// and optionally that a PDF artifact parses. Exit status and artifact
// presence are reported as separate failures.
//
// # Failures
//
// Errors carry a code from the errors package:
//
//   - COMPILATION_FAILED: embedded compiler error or non-zero engine exit
//   - LAUNCH_FAILED: engine executable missing or not startable
//   - ARTIFACT_MISSING: dispatch succeeded but figure.<ext> is absent or empty
//   - INVALID_ARTIFACT: the PDF artifact does not parse (ValidatePDF only)
//   - IO_FAILED: workspace preparation or file writes failed
//   - OPEN_FAILED: the viewer could not open a successfully built artifact
//
// Nothing is retried and a failed workspace is left in place for inspection
// (the engine's figure.log lives there).
//
// # Scratch Workspaces
//
// With [ScratchUnique] (the default) every compilation gets its own
// directory <temp-root>/output-<uuid>, so concurrent compilations are safe.
//
// [ScratchShared] reuses the fixed directory <temp-root>/output, deleting and
// recreating it for every compilation. Runners in one process serialize on a
// package-level mutex, but separate processes sharing a temp root will still
// destroy each other's files. Use it only when a predictable path matters
// more than concurrency.
//
// # Normalization
//
// Rendered documents contain newlines and tabs for readability. Embedded
// compilers receive the document with those collapsed to spaces (see
// [Normalize]); external engines read the verbatim file.
package compile
