package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	cameraIndex := flag.Int("camera", -1, "camera device index, overrides config")
	addr := flag.String("addr", ":8080", "HTTP listen address, empty to disable")
	headless := flag.Bool("headless", false, "run without the system tray")
	describe := flag.Bool("describe", false, "print the gesture vocabulary and exit")
	flag.Parse()

	if *describe {
		printGestures()
		return
	}

	fmt.Println("Mudra - Hand Gesture Control")

	settings := config.Default()

	// Overlay persisted settings, then the config file, then flags.
	st := openStore()
	if st != nil {
		defer st.Close()
		if stored, err := st.Settings().All(); err != nil {
			log.Printf("Failed to load stored settings: %v", err)
		} else {
			settings = settings.WithStringOverrides(stored)
		}
	}

	if *configPath != "" {
		var err error
		settings, err = settings.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if *cameraIndex >= 0 {
		settings.CameraIndex = *cameraIndex
	}

	a := app.New(app.Config{
		Settings: settings,
		Store:    st,
	})
	if err := a.LoadMappings(); err != nil {
		log.Printf("Failed to load mappings: %v", err)
	}

	events := server.NewEventHub()
	a.Dispatcher().SetOnAction(func(label gesture.Label, action control.Action) {
		events.Publish(server.Event{Gesture: string(label), Action: string(action)})
	})

	if *addr != "" {
		srv := server.New(server.Config{
			Settings: settings,
			Mapping:  a.Mapping(),
			Store:    st,
			Paused:   a.Paused,
			Events:   events,
		})
		go func() {
			fmt.Printf("Control API listening on %s\n", *addr)
			if err := srv.ListenAndServe(*addr); err != nil {
				log.Printf("Server failed: %v", err)
			}
		}()
	}

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	if *headless {
		runHeadless()
		return
	}
	runTray(a, events)
}

// runHeadless blocks until an interrupt or terminate signal arrives.
func runHeadless() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	fmt.Println("Shutting down")
}

// runTray runs the system tray loop, wiring its menu to the app. Blocks
// until Quit is selected.
func runTray(a *app.App, events *server.EventHub) {
	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnPause(func() {
		a.TogglePause()
		t.SetPaused(a.Paused())
	})
	t.OnQuit(func() {})

	// The tray shows the most recent dispatched action.
	a.Dispatcher().SetOnAction(func(label gesture.Label, action control.Action) {
		events.Publish(server.Event{Gesture: string(label), Action: string(action)})
		t.SetLastGesture(fmt.Sprintf("%s (%s)", label, action))
		t.SetPaused(a.Paused())
	})

	// Quit on signals too, so Ctrl-C leaves no held buttons behind.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		t.Quit()
	}()

	t.Run()
}

// openStore opens the database under the user's home directory. A failure
// is logged and the app runs without persistence.
func openStore() *store.Store {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Failed to get home directory: %v", err)
		return nil
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Printf("Failed to create data directory: %v", err)
		return nil
	}

	st, err := store.New(filepath.Join(dbDir, "mudra.db"))
	if err != nil {
		log.Printf("Failed to initialize store: %v", err)
		return nil
	}
	return st
}

// printGestures lists every gesture and its default binding.
func printGestures() {
	labels := []gesture.Label{
		gesture.Point, gesture.LeftClick, gesture.RightClick, gesture.Drag,
		gesture.Fist, gesture.Scroll, gesture.ThreeFingers, gesture.Victory,
		gesture.ThumbsUp, gesture.TwoHandsOpen,
	}
	for _, l := range labels {
		fmt.Printf("%-16s %s\n", l, control.Describe(l))
	}
}
