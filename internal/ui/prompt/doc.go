// Package prompt provides simple interactive prompts.
//
// All prompts render to stderr so that command output on stdout can be
// piped or captured without interleaving UI frames.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input
//   - [Select]: Single selection from a filterable list
package prompt
