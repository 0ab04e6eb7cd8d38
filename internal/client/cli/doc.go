// Package cli provides the clientdesk command line.
//
// It wires configuration, logging, the REST transport and the directory
// service, then either starts the interactive terminal UI or prints the
// client table once. The command tree is built by NewRootCommand:
//
//   - clientdesk: interactive UI (list mode when stdout is not a terminal)
//   - clientdesk list [--search text]: print matching clients and exit
//
// Configuration precedence is defaults, then the --config file, then flags.
// See App.Run and App.List for the two entry points.
package cli
