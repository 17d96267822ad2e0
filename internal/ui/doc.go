// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content appropriately for the terminal: colorized
// when supported, with text-based decorations (backticks, quotes) when
// NO_COLOR is set or the terminal can't do colors.
//
// Use the formatter matching the content type:
//
//	ui.Code.Sprint("sessiontrail init")          // Commands
//	ui.Path.Sprint(".sessiontrail/lifecycle.jsonl") // File paths
//	ui.Success.Sprint("✓")                        // Success indicators
//	ui.Error.Sprint("✗")                          // Error indicators
//	ui.Info.Sprint("→")                           // Hints
//	ui.Highlight.Sprint("abc-123")                // Session IDs, names
//	ui.Muted.Sprint("no session id")              // Secondary text
package ui
