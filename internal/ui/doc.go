// Package ui implements an interactive terminal view of a playlist using bubbletea's Elm architecture.
//
// The [Model] drives the token-gated fetch sequence:
//  1. Init acquires the access token through [services.Session.Authenticate]
//  2. On success it begins a batch and issues the tracks, metadata and show loads as concurrent commands
//  3. Each result carries its [services.Ticket]; results from a superseded batch are ignored
//
// Until the track page arrives the view shows a spinner with a loading placeholder. A failed
// token exchange or track fetch leaves the placeholder in place; errors go to the log file only.
//
// Keyboard navigation uses vim-style bindings (j/k, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
