package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordeye/config"
	"github.com/jsphweid/chordeye/identify"
	"github.com/jsphweid/chordeye/model"
	"github.com/jsphweid/chordeye/recognizer"
	"github.com/jsphweid/chordeye/tracker"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listens to a MIDI input port and prints chords",
	Long:  `Listens to a MIDI input port and prints chords`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func findInPort(name string) (drivers.In, error) {
	ins := midi.GetInPorts()
	if name == "" {
		if len(ins) == 0 {
			return nil, fmt.Errorf("no MIDI input ports available")
		}
		return ins[0], nil
	}
	for _, in := range ins {
		if strings.Contains(in.String(), name) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("no input port matching %q", name)
}

func listen() {
	defer midi.CloseDriver()

	cfg, err := config.Load()
	if err != nil {
		panic("Could not load config: " + err.Error())
	}

	in, err := findInPort(cfg.Listen.Port)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	opts := []recognizer.Option{
		recognizer.WithIdentifier(&identify.Identifier{MinScore: cfg.Identify.MinScore}),
	}
	if cfg.Listen.AnyChannel {
		opts = append(opts, recognizer.WithTracker(tracker.New(tracker.MatchAnyChannel())))
	}
	rec := recognizer.New(opts...)

	// A strummed chord arrives as a burst of note events; debounce the
	// printing so only the settled result shows.
	debounced := debounce.New(time.Duration(cfg.Listen.DebounceMS) * time.Millisecond)
	var mu sync.Mutex
	var current string
	show := func(line string) {
		mu.Lock()
		current = line
		mu.Unlock()
		debounced(func() {
			mu.Lock()
			defer mu.Unlock()
			fmt.Println(current)
		})
	}

	rec.Subscribe(recognizer.Listener{
		ChordIdentified: func(c model.Chord, notes []model.ActiveNote) {
			show(fmt.Sprintf("%-12v (%d notes)", c.Name(), len(notes)))
		},
		ChordCleared: func(notes []model.ActiveNote) {
			show(fmt.Sprintf("%-12v (%d notes)", "...", len(notes)))
		},
	})

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		bt := msg.Bytes()
		rec.Feed(bt, 0, len(bt), timestampms)
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Printf("Listening on %v, ctrl-c to stop\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
