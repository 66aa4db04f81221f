package anubis

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ---------------------------------------------------------------------------
// Schema version
// ---------------------------------------------------------------------------

const librarySchemaVersion = 1

// ---------------------------------------------------------------------------
// Schema DDL (v1)
// ---------------------------------------------------------------------------

const librarySchemaV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid           TEXT NOT NULL UNIQUE,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	genres         TEXT NOT NULL DEFAULT '[]',
	release_date   INTEGER,
	developers     TEXT NOT NULL DEFAULT '[]',
	publishers     TEXT NOT NULL DEFAULT '[]',
	platform       TEXT NOT NULL DEFAULT '',
	links          TEXT NOT NULL DEFAULT '[]',
	tags           TEXT NOT NULL DEFAULT '[]',
	cover_path     TEXT NOT NULL DEFAULT '',
	bg_path        TEXT NOT NULL DEFAULT '',
	playtime_secs  INTEGER NOT NULL DEFAULT 0,
	favorite       INTEGER NOT NULL DEFAULT 0,
	install_source TEXT NOT NULL DEFAULT '',
	launch_options TEXT NOT NULL DEFAULT '[]',
	added_at       INTEGER NOT NULL,
	last_played    INTEGER
);

CREATE INDEX IF NOT EXISTS idx_games_last_played ON games(last_played);
`

// Library is the persistent game collection backing the home screen. The
// UI layer never touches it directly; the host reads games out and feeds
// them to the HomeScreen as a plain ordered list.
type Library struct {
	db *sql.DB
}

// OpenLibrary opens (or creates) the sqlite library at path and migrates
// it to the current schema. Use ":memory:" for an ephemeral library.
func OpenLibrary(path string) (*Library, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open library %s: %w", path, err)
	}
	// One connection: the launcher is single-threaded, and ":memory:"
	// databases are per-connection.
	db.SetMaxOpenConns(1)
	lib := &Library{db: db}
	if err := lib.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return lib, nil
}

// Close releases the underlying database handle.
func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) migrate() error {
	if _, err := l.db.Exec(librarySchemaV1); err != nil {
		return fmt.Errorf("migrate library: %w", err)
	}
	var version int
	err := l.db.QueryRow(`SELECT version FROM schema_meta LIMIT 1`).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := l.db.Exec(`INSERT INTO schema_meta (version) VALUES (?)`, librarySchemaVersion); err != nil {
			return fmt.Errorf("stamp schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version > librarySchemaVersion:
		return fmt.Errorf("library schema v%d is newer than supported v%d", version, librarySchemaVersion)
	}
	return nil
}

// AddGame inserts a game record. The uuid must be unique in the library.
func (l *Library) AddGame(meta GameMetadata) error {
	if err := meta.Validate(); err != nil {
		return err
	}
	if meta.AddedAt.IsZero() {
		meta.AddedAt = time.Now()
	}
	_, err := l.db.Exec(`
		INSERT INTO games (
			uuid, title, description, genres, release_date, developers,
			publishers, platform, links, tags, cover_path, bg_path,
			playtime_secs, favorite, install_source, launch_options,
			added_at, last_played
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.UUID, meta.Title, meta.Description, jsonList(meta.Genres),
		nullUnix(meta.ReleaseDate), jsonList(meta.Developers),
		jsonList(meta.Publishers), meta.Platform, jsonList(meta.Links),
		jsonList(meta.Tags), imageColumn(meta.CoverArt), imageColumn(meta.BackgroundArt),
		int64(meta.Playtime.Seconds()), boolInt(meta.Favorite),
		meta.InstallSource, jsonList(meta.LaunchOptions),
		meta.AddedAt.Unix(), nullUnix(meta.LastPlayed),
	)
	if err != nil {
		return fmt.Errorf("add game %q: %w", meta.Title, err)
	}
	return nil
}

// RemoveGame deletes the game with the given uuid. Removing an unknown
// uuid is a no-op.
func (l *Library) RemoveGame(uuid string) error {
	if _, err := l.db.Exec(`DELETE FROM games WHERE uuid = ?`, uuid); err != nil {
		return fmt.Errorf("remove game %s: %w", uuid, err)
	}
	return nil
}

// ListGames returns all games in insertion order, which is the home
// screen's display order.
func (l *Library) ListGames() ([]GameMetadata, error) {
	return l.queryGames(`ORDER BY id`)
}

// RecentlyPlayed returns up to limit games ordered by most recent play.
// Never-played games are excluded.
func (l *Library) RecentlyPlayed(limit int) ([]GameMetadata, error) {
	return l.queryGames(`WHERE last_played IS NOT NULL ORDER BY last_played DESC LIMIT ?`, limit)
}

// TouchPlayed stamps the game's last-played time. Unknown uuids are a
// no-op.
func (l *Library) TouchPlayed(uuid string, at time.Time) error {
	if _, err := l.db.Exec(`UPDATE games SET last_played = ? WHERE uuid = ?`, at.Unix(), uuid); err != nil {
		return fmt.Errorf("touch game %s: %w", uuid, err)
	}
	return nil
}

// AddPlaytime accumulates play duration onto the game's total.
func (l *Library) AddPlaytime(uuid string, d time.Duration) error {
	if _, err := l.db.Exec(`UPDATE games SET playtime_secs = playtime_secs + ? WHERE uuid = ?`,
		int64(d.Seconds()), uuid); err != nil {
		return fmt.Errorf("add playtime for %s: %w", uuid, err)
	}
	return nil
}

// SetFavorite flips the favorite flag.
func (l *Library) SetFavorite(uuid string, fav bool) error {
	if _, err := l.db.Exec(`UPDATE games SET favorite = ? WHERE uuid = ?`, boolInt(fav), uuid); err != nil {
		return fmt.Errorf("set favorite for %s: %w", uuid, err)
	}
	return nil
}

func (l *Library) queryGames(clause string, args ...any) ([]GameMetadata, error) {
	rows, err := l.db.Query(`
		SELECT uuid, title, description, genres, release_date, developers,
		       publishers, platform, links, tags, cover_path, bg_path,
		       playtime_secs, favorite, install_source, launch_options,
		       added_at, last_played
		FROM games `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []GameMetadata
	for rows.Next() {
		var (
			m                                  GameMetadata
			genres, devs, pubs, links, tags    string
			launchOpts, coverPath, bgPath      string
			releaseDate, lastPlayed            sql.NullInt64
			playtimeSecs, addedAt, favoriteInt int64
		)
		if err := rows.Scan(
			&m.UUID, &m.Title, &m.Description, &genres, &releaseDate,
			&devs, &pubs, &m.Platform, &links, &tags, &coverPath, &bgPath,
			&playtimeSecs, &favoriteInt, &m.InstallSource, &launchOpts,
			&addedAt, &lastPlayed,
		); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		m.Genres = parseList(genres)
		m.Developers = parseList(devs)
		m.Publishers = parseList(pubs)
		m.Links = parseList(links)
		m.Tags = parseList(tags)
		m.LaunchOptions = parseList(launchOpts)
		m.CoverArt = parseImageColumn(coverPath)
		m.BackgroundArt = parseImageColumn(bgPath)
		m.Playtime = time.Duration(playtimeSecs) * time.Second
		m.Favorite = favoriteInt != 0
		m.AddedAt = time.Unix(addedAt, 0)
		if releaseDate.Valid {
			m.ReleaseDate = time.Unix(releaseDate.Int64, 0)
		}
		if lastPlayed.Valid {
			m.LastPlayed = time.Unix(lastPlayed.Int64, 0)
		}
		games = append(games, m)
	}
	return games, rows.Err()
}

// Games strips the metadata down to the tile-facing list.
func Games(metas []GameMetadata) []Game {
	games := make([]Game, len(metas))
	for i, m := range metas {
		games[i] = m.Game
	}
	return games
}

func jsonList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func parseList(data string) []string {
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil || len(items) == 0 {
		return nil
	}
	return items
}

// Inline artwork shares the path column, marked by a prefix no filesystem
// path starts with.
const base64ImagePrefix = "base64:"

func imageColumn(img *ImageSource) string {
	if img == nil {
		return ""
	}
	if img.Base64Data != "" {
		return base64ImagePrefix + img.Base64Data
	}
	return img.FilePath
}

func parseImageColumn(s string) *ImageSource {
	switch {
	case s == "":
		return nil
	case strings.HasPrefix(s, base64ImagePrefix):
		return Base64Image(strings.TrimPrefix(s, base64ImagePrefix))
	default:
		return FileImage(s)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullUnix(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Unix()
}
