// Package tui provides the interactive password session.
//
// The session shows a masked input that is re-scored on every change, a
// colored score bar with the verdict and numbered suggestions, and the
// committed history. The history table is a read-only projection of
// session.History; the model never stores candidates itself.
//
// Key bindings:
//
//	enter    commit the current candidate
//	ctrl+r   show or hide the candidate
//	ctrl+g   generate a password in the background
//	ctrl+s   export the history
//	ctrl+x   clear the history
//	esc      quit
//
// The model is used from the bubbletea event loop only. Generation runs on
// a generator.Worker goroutine and reports back through a message.
package tui
