package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/cubot/cubot"
	"github.com/ezrec/cubot/npc"
	"github.com/ezrec/cubot/world"
)

var (
	newProgram string // Program for the initial Cubot
	newOriginX int    // World X origin
	newOriginY int    // World Y origin
)

var newCmd = &cobra.Command{
	Use:   "new <world.json>",
	Short: "Create a world with a factory, a radio tower, and one Cubot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		size := cfg.WorldSize

		w := world.NewWorld(size, newOriginX, newOriginY)
		for n := range size {
			w.SetTile(n, 0, world.TILE_WALL)
			w.SetTile(n, size-1, world.TILE_WALL)
			w.SetTile(0, n, world.TILE_WALL)
			w.SetTile(size-1, n, world.TILE_WALL)
		}

		objects := []world.Object{
			npc.NewFactory(w.NextObjectID(), 2, 2, cfg),
			npc.NewRadioTower(w.NextObjectID(), size-3, size-3, cfg.RadioMaxMessages, cfg.RadioMessageLength),
		}

		bot := cubot.NewCubot(w, size/2, size/2, cfg)
		if len(newProgram) != 0 {
			if err := bot.Assemble(readProgram(newProgram)); err != nil {
				logrus.Fatalf("%s: %v", newProgram, err)
			}
		}
		objects = append(objects, bot)

		for _, obj := range objects {
			if err := w.AddObject(obj); err != nil {
				logrus.Fatalf("Failed to place object %d: %v", obj.ObjectID(), err)
			}
		}

		data, err := newCodec(cfg).Save(w)
		if err != nil {
			logrus.Fatalf("Failed to encode world: %v", err)
		}

		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			logrus.Fatalf("Failed to write %s: %v", args[0], err)
		}

		logrus.Infof("%s: %dx%d world, %d objects", args[0], size, size, w.ObjectCount())
	},
}

func init() {
	newCmd.Flags().StringVar(&newProgram, "program", "", "Assembly program for the Cubot")
	newCmd.Flags().IntVar(&newOriginX, "x", 0, "World X origin")
	newCmd.Flags().IntVar(&newOriginY, "y", 0, "World Y origin")

	rootCmd.AddCommand(newCmd)
}
