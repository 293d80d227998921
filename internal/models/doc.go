// Package models defines the transient values that flow from the Spotify Web API to the renderers.
//
// Nothing here is persisted. A [ViewModel] is a read-only snapshot of the session slots:
//   - [PlaylistMetadata] : name, description, collaborative flag, followers, images
//   - [TrackPage] : the first page of playlist tracks in server order, plus the server's total
//   - [ShowMetadata] : fetched alongside the playlist and exposed in a secondary slot
//
// A nil [ViewModel.TrackPage] is the loading state. Renderers show a placeholder until it is set.
package models
