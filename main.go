package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/levels"
	"github.com/milk9111/slingshot/logger"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "log format: console or json")
	flag.Parse()

	log, err := logger.New(logger.Config{Level: *logLevel, Format: *logFormat, Development: *debug})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("slingshot")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(*levelName, *debug, *watch, log)
	if err != nil {
		log.Fatal("create game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		log.Error("run game", zap.Error(err))
	}
}
