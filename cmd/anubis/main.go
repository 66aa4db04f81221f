package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qhua948/anubis"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: user config dir)")
	dbPath := flag.String("db", "", "path to the game library database (overrides config)")
	flag.Parse()

	// The alt screen owns stdout; log to a file instead.
	logFile, err := tea.LogToFile("anubis.log", "anubis")
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(*configPath, *dbPath); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "anubis: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dbPath string) error {
	var cfg anubis.Config
	var err error
	if configPath != "" {
		cfg, err = anubis.LoadConfigFile(configPath)
	} else {
		cfg, err = anubis.LoadConfig()
	}
	if err != nil {
		return err
	}

	if dbPath == "" {
		dbPath, err = cfg.LibraryPath()
		if err != nil {
			return err
		}
	}
	lib, err := anubis.OpenLibrary(dbPath)
	if err != nil {
		return err
	}
	defer lib.Close()

	metas, err := lib.ListGames()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		if err := seedLibrary(lib); err != nil {
			return err
		}
		if metas, err = lib.ListGames(); err != nil {
			return err
		}
	}

	disp := anubis.NewDispatcher()
	home, err := anubis.NewHomeScreen(cfg.GridConfig(), disp)
	if err != nil {
		return err
	}

	disp.
		HandleButton(anubis.ButtonGames, func() {
			reload(home, lib, false)
		}).
		HandleButton(anubis.ButtonRecentlyPlayed, func() {
			reload(home, lib, true)
		}).
		HandleButton(anubis.ButtonSettings, func() {
			log.Println("settings: not implemented yet")
		}).
		HandleGame(func(uuid string) {
			launchGame(lib, uuid)
		})

	home.SetGames(anubis.Games(metas))

	theme := anubis.DefaultTheme().WithAccent(lipgloss.Color(cfg.Theme.Accent))
	model := anubis.NewModel(home).WithTheme(theme)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// reload swaps the visible list between the full library and the
// recently-played slice.
func reload(home *anubis.HomeScreen, lib *anubis.Library, recent bool) {
	var metas []anubis.GameMetadata
	var err error
	if recent {
		metas, err = lib.RecentlyPlayed(21)
	} else {
		metas, err = lib.ListGames()
	}
	if err != nil {
		log.Printf("reload library: %v", err)
		return
	}
	home.SetGames(anubis.Games(metas))
}

// launchGame resolves the uuid against the library and spawns the game's
// launch command, stamping the last-played time on success.
func launchGame(lib *anubis.Library, uuid string) {
	metas, err := lib.ListGames()
	if err != nil {
		log.Printf("launch %s: %v", uuid, err)
		return
	}
	for _, m := range metas {
		if m.UUID != uuid {
			continue
		}
		if len(m.LaunchOptions) == 0 {
			log.Printf("launch %q: no launch options configured", m.Title)
			return
		}
		cmd := exec.Command(m.LaunchOptions[0], m.LaunchOptions[1:]...)
		if err := cmd.Start(); err != nil {
			log.Printf("launch %q: %v", m.Title, err)
			return
		}
		if err := lib.TouchPlayed(uuid, time.Now()); err != nil {
			log.Printf("touch %q: %v", m.Title, err)
		}
		log.Printf("launched %q (pid %d)", m.Title, cmd.Process.Pid)
		return
	}
	log.Printf("launch %s: not in library", uuid)
}

// seedLibrary fills a fresh database with placeholder entries so the home
// screen has something to show on first run.
func seedLibrary(lib *anubis.Library) error {
	titles := []string{
		"Celeste", "Hades", "Hollow Knight", "Stardew Valley",
		"Outer Wilds", "Disco Elysium", "Return of the Obra Dinn",
		"Slay the Spire", "Undertale", "Baba Is You",
	}
	for _, title := range titles {
		meta := anubis.GameMetadata{Game: anubis.NewGame(title)}
		if err := lib.AddGame(meta); err != nil {
			return fmt.Errorf("seed library: %w", err)
		}
	}
	return nil
}
