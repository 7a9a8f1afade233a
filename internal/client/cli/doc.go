// Package cli provides the interactive blog command-line client.
//
// It wires configuration, the credential store, the HTTP client, the
// session and the navigation guard, and runs a REPL over five text views:
// Home, BlogDetail, PostEditor, Login and UserDetail.
//
// Every navigation goes through the guard. A protected view requested
// without a session shows the Login view first and, once the user has
// logged in, continues to the view that was asked for.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
