// Package services talks to the Spotify Web API on behalf of a single viewer.
//
// # Token Provider
//
// [Authenticator] implements [TokenProvider] with the OAuth2 client-credentials grant
// (golang.org/x/oauth2/clientcredentials). The client id and secret travel in a Basic
// authorization header and the form body carries grant_type=client_credentials.
// Tokens are not cached or refreshed.
//
// # Resource Fetcher
//
// [SpotifyService] implements [Fetcher]. Each call is one bearer-authenticated GET with a
// fields filter:
//   - [SpotifyService.PlaylistMetadata] : /playlists/{id}
//   - [SpotifyService.PlaylistTracks] : /playlists/{id}/tracks with limit
//   - [SpotifyService.Show] : /shows/{id}, limit accepted but ignored
//
// # Session
//
// [Session] holds the token and the metadata, track page and show slots. No fetch is issued
// until a token is present ([Session.Ready]). [Session.Begin] hands out a [Ticket] per batch;
// results carrying a superseded ticket are discarded so a slow response for an old playlist
// can never overwrite a newer one.
//
// # Error Handling
//
// Fetchers return typed errors from the shared package:
//   - [shared.ErrAuthFailed] : token exchange failed
//   - [shared.ErrNotAuthenticated] : no token yet
//   - [shared.ErrAPIRequest] : transport failure, non-2xx status or undecodable body
//
// The Session is the boundary: it logs those errors and stores nil. Callers only ever see
// data present or data absent.
package services
