package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/cubot"
	"github.com/ezrec/cubot/npc"
)

func TestMain(m *testing.M) {
	// Set DEBUG_TESTS=1 to see debug logs.
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.ErrorLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) string {
	configPath = ""
	newProgram = ""
	runTicks = 1
	runOutput = ""
	runProgram = ""
	asmDefines = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--log", "error"))
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

const program = `
	MOV A, LIDAR_GET_POS
	HWI LIDAR
	MOV [0x10], X
	MOV [0x11], Y
	BRK
`

func TestNewRun(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "pos.asm")
	assert.NoError(os.WriteFile(source, []byte(program), 0o644))
	cfgPath := filepath.Join(dir, "game.yaml")
	assert.NoError(os.WriteFile(cfgPath, []byte("world_size: 12\ncubot_memory_size: 1024\n"), 0o644))
	save := filepath.Join(dir, "world.json")

	execute(t, "new", save, "--config", cfgPath, "--program", source)
	execute(t, "run", save, "--config", cfgPath, "--ticks", "3")

	cfg, err := config.Load(cfgPath)
	assert.NoError(err)
	data, err := os.ReadFile(save)
	assert.NoError(err)
	w, err := newCodec(cfg).Load(data)
	assert.NoError(err)
	if !assert.NotNil(w) {
		return
	}

	assert.Equal(12, w.WorldSize())
	assert.True(w.IsTileBlocked(0, 5))

	var bots []*cubot.Cubot
	var factories []*npc.Factory
	for obj := range w.Objects() {
		switch o := obj.(type) {
		case *cubot.Cubot:
			bots = append(bots, o)
		case *npc.Factory:
			factories = append(factories, o)
		}
	}

	if assert.Len(bots, 1) {
		pos, err := bots[0].Memory.Words(0x10, 2)
		assert.NoError(err)
		assert.Equal([]uint16{6, 6}, pos)
		assert.Equal(program, bots[0].Source)
	}
	if assert.Len(factories, 1) {
		assert.Len(factories[0].NpcIDs(), 1)
	}
}

func TestAsm(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "pos.asm")
	assert.NoError(os.WriteFile(source, []byte(program), 0o644))

	out := execute(t, "asm", source)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(lines, 5)
	assert.Contains(lines[1], "HWI")

	out = execute(t, "asm", "--defines")
	assert.Contains(out, ".equ LIDAR_GET_PATH 0x2\n")
}
