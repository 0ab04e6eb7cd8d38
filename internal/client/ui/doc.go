// Package ui holds the terminal-independent state of the clientdesk screens:
// the contact sub-form, the client form, the modal session, the search
// debouncer and the latest-wins request sequence. It also renders client
// records into view nodes (Table, Row, Badge, Binding) that a front end draws.
//
// Nothing in this package performs I/O. Callers own the values and pass them
// explicitly; none of the types are safe for concurrent use.
package ui
