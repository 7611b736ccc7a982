package main

import (
	"log"

	"github.com/joho/godotenv"

	"lyricsbot/core/cmd"
	"lyricsbot/internal/bot"
)

func main() {
	// Optional: local development keeps secrets in .env.
	_ = godotenv.Load()

	err := cmd.Run(cmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			return bot.LoadConfig(path)
		},
		Bootstrap: func(cfg cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			return bot.Bootstrap(cfg.(*bot.Config))
		},
	})
	if err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
