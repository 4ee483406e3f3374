// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/neuralllamas/focusflow/biosignal"
	"github.com/neuralllamas/focusflow/logger"
	"github.com/neuralllamas/focusflow/mpvplayer"
	"github.com/neuralllamas/focusflow/remote"
	"github.com/neuralllamas/focusflow/songlog"
	"github.com/neuralllamas/focusflow/subsonic"
	"github.com/spf13/viper"
)

var osExit = os.Exit  // A variable to allow mocking os.Exit in tests
var headlessMode bool // This can be set to true during tests
var testMode bool     // This can be set to true during tests, too

const DEVELOPMENT = "development"

// APIVersion is the Subsonic API version we talk, communicated to the server
const APIVersion = "1.8.0"

// Name is the client name we tell the Subsonic server
var Name string = "focusflow"

// Version is the program version; usually set from BuildInfo
var Version string = DEVELOPMENT

func setConfigDefaults() {
	viper.SetDefault("server.log-path", songlog.DefaultPath)
	viper.SetDefault("signal.url", biosignal.DefaultURL)
	viper.SetDefault("signal.max-samples", 1000)
	viper.SetDefault("playlist.name", "npc")
	viper.SetDefault("playlist.limit", 5)
}

func readConfig(configFile *string) error {
	required_properties := []string{"server.host"}

	setConfigDefaults()

	if configFile != nil && *configFile != "" {
		// use custom config file
		viper.SetConfigFile(*configFile)
	} else {
		// lookup default dirs
		viper.SetConfigName("focusflow")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/focusflow")
		viper.AddConfigPath(".")
	}

	// read it
	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("config file error: %w", err)
	}

	// validate
	for _, prop := range required_properties {
		if !viper.IsSet(prop) {
			return fmt.Errorf("config property %s is required", prop)
		}
	}
	if viper.GetInt("signal.max-samples") <= 0 {
		return fmt.Errorf("config property signal.max-samples must be positive, got %d", viper.GetInt("signal.max-samples"))
	}
	if viper.IsSet("subsonic.host") {
		for _, prop := range []string{"auth.username", "auth.password"} {
			if !viper.IsSet(prop) {
				return fmt.Errorf("config property %s is required with subsonic.host", prop)
			}
		}
	}

	return nil
}

// loadPlaylist fetches the configured playlist and turns its first entries
// into player queue items.
func loadPlaylist(connection *subsonic.Connection, name string, limit int) ([]mpvplayer.QueueItem, error) {
	playlist, err := connection.FindPlaylist(name)
	if err != nil {
		return nil, err
	}

	items := make([]mpvplayer.QueueItem, 0, limit)
	for _, entity := range playlist.Entries {
		if len(items) >= limit {
			break
		}
		if entity.IsDirectory {
			continue
		}
		items = append(items, mpvplayer.QueueItem{
			Id:       entity.Id,
			Uri:      connection.GetPlayUrl(entity),
			Title:    entity.GetSongTitle(),
			Artist:   entity.Artist,
			Duration: entity.Duration,
		})
	}
	return items, nil
}

// initPlayer starts mpv, connects its playback listener to the song reporter
// and fills the queue from the Subsonic playlist.
func initPlayer(logger *logger.Logger, reporter *songlog.Reporter) (*mpvplayer.Player, error) {
	player, err := mpvplayer.NewPlayer(logger)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize mpv (is libmpv installed?): %w", err)
	}

	player.AddPlaybackListener(func(trackId string, paused bool) {
		reporter.HandleUpdate(songlog.PlaybackUpdate{TrackID: trackId, IsPaused: paused})
	})

	if !viper.IsSet("subsonic.host") {
		logger.Print("subsonic.host not set, queue is empty")
		return player, nil
	}

	connection := subsonic.Init(logger)
	connection.SetClientInfo(Name, APIVersion)
	connection.Username = viper.GetString("auth.username")
	connection.Password = viper.GetString("auth.password")
	connection.Host = viper.GetString("subsonic.host")
	connection.PlaintextAuth = viper.GetBool("auth.plaintext")

	items, err := loadPlaylist(connection, viper.GetString("playlist.name"), viper.GetInt("playlist.limit"))
	if err != nil {
		player.Quit()
		return nil, fmt.Errorf("error fetching playlist from server: %w", err)
	}
	for i := range items {
		player.AddToQueue(&items[i])
	}
	logger.Printf("queued %d songs", len(items))
	return player, nil
}

// return codes:
// 0 - OK
// 1 - generic errors
// 2 - main config errors
func main() {
	help := flag.Bool("help", false, "Print usage")
	enableMpris := flag.Bool("mpris", false, "Enable MPRIS2")
	configFile := flag.String("config", "", "use config `file`")
	version := flag.Bool("version", false, "print the focusflow version and exit")
	headless := flag.Bool("headless", false, "run without the terminal UI, logging to stderr")
	snapshotFile := flag.String("snapshot", "", "write a PNG of the signal chart to `file` on exit")
	noPlayer := flag.Bool("no-player", false, "disable the player and song logging")
	noSignal := flag.Bool("no-signal", false, "disable the signal viewer")

	flag.Parse()
	if *help {
		fmt.Printf("USAGE: %s <args>\n", os.Args[0])
		flag.Usage()
		osExit(0)
		return
	}
	if Version == DEVELOPMENT {
		if bi, ok := debug.ReadBuildInfo(); ok {
			Version = bi.Main.Version
		}
	}
	if *version {
		fmt.Printf("focusflow %s\n", Version)
		osExit(0)
		return
	}

	if err := readConfig(configFile); err != nil {
		if configFile == nil {
			fmt.Fprintf(os.Stderr, "Failed to read configuration: configuration file is nil\n")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to read configuration from file '%s': %v\n", *configFile, err)
		}
		osExit(2)
		return
	}

	logger := logger.Init()

	songLogClient := songlog.NewClient(viper.GetString("server.host"))
	songLogClient.Path = viper.GetString("server.log-path")
	reporter := songlog.NewReporter(songLogClient, logger)
	defer reporter.Close()

	var player *mpvplayer.Player
	if !*noPlayer {
		var err error
		player, err = initPlayer(logger, reporter)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			osExit(1)
			return
		}
	}

	// init mpris2 player control (linux only but fails gracefully on other systems)
	var mprisPlayer *remote.MprisPlayer
	if *enableMpris && player != nil {
		var err error
		mprisPlayer, err = remote.RegisterMprisPlayer(player, logger)
		if err != nil {
			fmt.Printf("Unable to register MPRIS with DBUS: %s\n", err)
			fmt.Println("Try running without MPRIS")
			osExit(1)
			return
		}
		defer mprisPlayer.Close()
	}

	if testMode {
		fmt.Println("Running in test mode for testing.")
		osExit(0x23420001)
		return
	}

	sess := &session{
		logger:       logger,
		player:       player,
		snapshots:    &biosignal.Latest{},
		signalURL:    viper.GetString("signal.url"),
		maxSamples:   viper.GetInt("signal.max-samples"),
		signalOn:     !*noSignal,
		snapshotFile: *snapshotFile,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *headless || headlessMode {
		if err := runHeadless(ctx, sess); err != nil {
			fmt.Fprintln(os.Stderr, err)
			osExit(1)
			return
		}
	} else {
		ui := InitGui(sess)
		if err := ui.Run(ctx); err != nil {
			panic(err)
		}
	}
	cancel()

	// the front end no longer reads the log; in-flight song reports still write to it
	go logger.Drain(os.Stderr, nil)

	if sess.snapshotFile != "" {
		if err := sess.snapshots.WriteFile(sess.snapshotFile); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to write snapshot: %v\n", err)
		}
	}
}
