package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/hokage/jutsu/internal/app"
	"github.com/hokage/jutsu/internal/audio"
	"github.com/hokage/jutsu/internal/chakra"
	"github.com/hokage/jutsu/internal/server"
	"github.com/hokage/jutsu/internal/store"
	"github.com/hokage/jutsu/internal/tray"
)

func main() {
	fmt.Println("Jutsu - Real-Time Jutsu Recognition")

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the store
	dataDir := cfg.DataDir
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		dataDir = filepath.Join(homeDir, ".jutsu")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "jutsu.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	if err := st.Jutsus().SeedDefaults(chakra.DefaultDefinitions()); err != nil {
		log.Fatalf("Failed to seed jutsu definitions: %v", err)
	}

	// Stored definitions win over the compiled-in defaults so user edits
	// survive restarts.
	defs, err := st.Jutsus().List()
	if err != nil {
		log.Fatalf("Failed to load jutsu definitions: %v", err)
	}

	a := app.New(cfg, st, defs)

	if cfg.AudioEnabled {
		player, err := audio.NewSpeakerPlayer()
		if err != nil {
			log.Printf("Audio unavailable, cues disabled: %v", err)
		} else {
			a.SetPlayer(player)
		}
	}

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
		Camera:    a.Camera(),
	})

	a.OnFatal(func(err error) {
		log.Printf("Pipeline stopped: %v", err)
	})

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start detection pipeline: %v", err)
	}

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnReset(func() {
		a.ResetChakra()
	})
	t.OnSettings(func() {
		openBrowser("http://localhost" + cfg.Addr)
	})
	t.OnQuit(func() {
		a.Stop()
	})
	a.AddSink(traySink{t})

	// Blocks until quit is chosen from the menu.
	t.Run()
}

// traySink mirrors pipeline state into the tray menu.
type traySink struct {
	tray *tray.Tray
}

func (s traySink) Publish(out app.FrameOutput) {
	s.tray.SetChakra(out.ChakraPct)
	s.tray.SetLastJutsu(out.LastJutsu)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.jutsu/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".jutsu", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
