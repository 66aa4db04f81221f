package anubis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Game is the tile-facing datum: what the home screen needs to place and
// label one grid tile. UUID is the durable identity used for focus and
// dispatch; Title is display-only. The UI never mutates either field.
//
// UUID uniqueness across the visible list is the caller's responsibility.
// A duplicate uuid is never an error here — it surfaces as two tiles
// highlighting together when that id gains focus.
type Game struct {
	Title string
	UUID  string
}

// NewGame creates a game with a freshly generated uuid.
func NewGame(title string) Game {
	return Game{Title: title, UUID: uuid.NewString()}
}

// FocusID returns the focus identifier of the game's tile.
func (g Game) FocusID() FocusID {
	return GameFocusID(g.UUID)
}

// Validate checks that the game carries a title and a well-formed uuid.
func (g Game) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("game %q: empty title", g.UUID)
	}
	if _, err := uuid.Parse(g.UUID); err != nil {
		return fmt.Errorf("game %q: bad uuid: %w", g.Title, err)
	}
	return nil
}

// ImageSource locates artwork either on the filesystem or inline as a
// base64-encoded payload. At most one field is set.
type ImageSource struct {
	FilePath   string
	Base64Data string
}

// FileImage returns an ImageSource backed by a path on disk.
func FileImage(path string) *ImageSource {
	return &ImageSource{FilePath: path}
}

// Base64Image returns an ImageSource carrying inline image data.
func Base64Image(data string) *ImageSource {
	return &ImageSource{Base64Data: data}
}

// GameMetadata is the full library record for a game. The source of truth
// for most fields is an external catalogue (igdb and friends); the launcher
// only stores and displays them.
type GameMetadata struct {
	Game

	Description string
	// Genres are stored lower-cased.
	Genres      []string
	ReleaseDate time.Time // zero value when unknown
	Developers  []string
	Publishers  []string
	Platform    string
	Links       []string
	// Tags are user defined.
	Tags          []string
	CoverArt      *ImageSource
	BackgroundArt *ImageSource
	Playtime      time.Duration
	Favorite      bool
	InstallSource string
	LaunchOptions []string

	AddedAt    time.Time
	LastPlayed time.Time // zero value when never played
}
