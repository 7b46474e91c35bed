package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/cubot/cubot"
	"github.com/ezrec/cubot/world"
)

var (
	runTicks   int    // Number of ticks to run
	runOutput  string // Save path, if not the input
	runProgram string // Replacement program for every Cubot
)

var runCmd = &cobra.Command{
	Use:   "run <world.json>",
	Short: "Run a saved world for a number of ticks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		codec := newCodec(cfg)

		data, err := os.ReadFile(args[0])
		if err != nil {
			logrus.Fatalf("Failed to read %s: %v", args[0], err)
		}

		w, err := codec.Load(data)
		if w == nil {
			logrus.Fatalf("Failed to load %s: %v", args[0], err)
		}
		if err != nil {
			logrus.Warnf("%s: some objects were dropped: %v", args[0], err)
		}

		if len(runProgram) != 0 {
			source := readProgram(runProgram)
			for obj := range w.Objects() {
				bot, ok := obj.(*cubot.Cubot)
				if !ok {
					continue
				}
				if err := bot.Assemble(source); err != nil {
					logrus.Fatalf("%s: %v", runProgram, err)
				}
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		s := world.NewScheduler(w)
		err = s.Run(ctx, runTicks)
		if err != nil && !errors.Is(err, context.Canceled) {
			logrus.Fatalf("Run failed: %v", err)
		}

		logrus.Infof("%d ticks, %d objects", s.Ticks(), w.ObjectCount())

		output := runOutput
		if len(output) == 0 {
			output = args[0]
		}

		data, err = codec.Save(w)
		if err != nil {
			logrus.Fatalf("Failed to encode world: %v", err)
		}

		if err := os.WriteFile(output, data, 0o644); err != nil {
			logrus.Fatalf("Failed to write %s: %v", output, err)
		}
	},
}

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 1, "Number of ticks to run")
	runCmd.Flags().StringVar(&runOutput, "output", "", "Save the world here instead of over the input")
	runCmd.Flags().StringVar(&runProgram, "program", "", "Load this assembly program into every Cubot first")

	rootCmd.AddCommand(runCmd)
}
