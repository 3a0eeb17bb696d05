package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ogier/pflag"

	"pixeldefender/audio"
	"pixeldefender/game"
)

func main() {
	configPath := pflag.StringP("config", "c", "pixeldefender.toml", "TOML config file; missing file uses defaults")
	scoreFile := pflag.StringP("scores", "s", "", "default high score file")
	assetDir := pflag.StringP("assets", "a", "", "directory holding images and sounds")
	mute := pflag.BoolP("mute", "m", false, "disable audio")
	debug := pflag.BoolP("debug", "d", false, "debug logging and hitboxes")
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixeldefender",
	})

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if *scoreFile != "" {
		config.ScoreFile = *scoreFile
	}
	if *assetDir != "" {
		config.AssetDir = *assetDir
	}
	config.Mute = config.Mute || *mute
	config.Debug = config.Debug || *debug
	if config.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	player := audio.New(config.AssetDir, config.Volume, config.Mute, logger)
	defer player.Close()

	g, err := game.NewGame(config, logger, player)
	if err != nil {
		logger.Fatal("failed to create game", "err", err)
	}
	for _, n := range player.Notices() {
		g.AddNotice("%s", n)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pixel Defender")
	ebiten.SetTPS(config.TPS)

	logger.Info("starting", "assets", config.AssetDir, "scores", config.ScoreFile)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
