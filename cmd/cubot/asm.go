package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/cubot/cubot"
	"github.com/ezrec/cubot/world"
)

var asmDefines bool // List the predefined equates

var asmCmd = &cobra.Command{
	Use:   "asm [program.asm]",
	Short: "Assemble a Cubot program and print its listing",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		w := world.NewWorld(cfg.WorldSize, 0, 0)
		bot := cubot.NewCubot(w, 0, 0, cfg)

		out := cmd.OutOrStdout()

		if asmDefines {
			for name, value := range bot.Defines() {
				fmt.Fprintf(out, ".equ %s %s\n", name, value)
			}
		}

		if len(args) == 0 {
			return
		}

		if err := bot.Assemble(readProgram(args[0])); err != nil {
			logrus.Fatalf("%s: %v", args[0], err)
		}

		fmt.Fprint(out, bot.Program.String())
	},
}

func init() {
	asmCmd.Flags().BoolVar(&asmDefines, "defines", false, "List the predefined equates")

	rootCmd.AddCommand(asmCmd)
}
