// Package pipeline implements the text rewrites applied by ldocfilter.
//
// Two independent rules run in a fixed order over the whole document:
//   - TOC stripping removes every span between a start and an end sentinel
//   - Table conversion turns runs of pipe-delimited lines into HTML tables
//
// Stripping runs first so that pipe-delimited lines inside a TOC block are
// never mistaken for a table. Neither rule re-scans its own output.
//
// Inline code spans are rewritten to <code> elements inside table cells only;
// the rest of the document is left to the downstream Markdown processor.
package pipeline
