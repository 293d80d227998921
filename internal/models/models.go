package models

// Credentials is the client id/secret pair used for the client-credentials grant.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Valid reports whether both fields are non-empty.
func (c Credentials) Valid() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers holds the follower count of a playlist.
type Followers struct {
	Total int `json:"total"`
}

// PlaylistMetadata is the playlist header shown above the track list.
type PlaylistMetadata struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Collaborative bool      `json:"collaborative"`
	Followers     Followers `json:"followers"`
	Images        []Image   `json:"images"`
}

// Artist is the artist subset requested for each track.
type Artist struct {
	Name string `json:"name"`
}

// Track is a playlist entry with the five requested fields.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artists    []Artist `json:"artists"`
	PreviewURL string   `json:"preview_url"`
	DurationMS int      `json:"duration_ms"`
}

// ArtistNames returns the artist names in server order.
func (t Track) ArtistNames() []string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return names
}

// TrackPage is one page of playlist tracks. Total is the server's count for the whole playlist.
type TrackPage struct {
	Items []Track `json:"items"`
	Total int     `json:"total"`
}

// ShowMetadata describes a show (podcast).
type ShowMetadata struct {
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Images      []Image  `json:"images"`
	Name        string   `json:"name"`
	Publisher   string   `json:"publisher"`
	Type        string   `json:"type"`
	URI         string   `json:"uri"`
}

// ViewModel is the data handed to a renderer.
type ViewModel struct {
	PlaylistMetadata *PlaylistMetadata `json:"playlist_metadata"`
	TrackPage        *TrackPage        `json:"track_page"`
	Show             *ShowMetadata     `json:"show,omitempty"`
}

// Loading reports whether the primary list is still absent.
func (v ViewModel) Loading() bool {
	return v.TrackPage == nil
}
