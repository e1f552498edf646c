// Package report renders scoring results, generated passwords, and session
// history exports.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown documents for sharing
//   - CSVWriter: Delimited text, the session history export format
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output. Writers never
// decide where output goes; callers hand them an io.Writer.
package report
