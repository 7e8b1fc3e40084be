// Package cli is the interactive user console.
//
// It wires configuration, the local session database, the HTTP client, the
// two stores and the router, and runs a REPL over them. Two views exist:
//
//   - /signin (public): prompts for credentials and submits them; once the
//     session store reports a signed-in state the view moves on to the
//     dashboard.
//   - /dashboard (gated): lists one page of users, fetches whenever the page
//     changes, filters the page with a debounced search and creates, edits
//     and deletes users.
//
// "/" redirects to the dashboard, which in turn redirects to /signin when no
// session exists. Unknown paths show "Page Not Found".
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
