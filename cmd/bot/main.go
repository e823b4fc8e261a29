package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/JasminDreasond/Tiny-Dices/internal/config"
	"github.com/JasminDreasond/Tiny-Dices/internal/dice"
	"github.com/JasminDreasond/Tiny-Dices/internal/session"
	discordsurface "github.com/JasminDreasond/Tiny-Dices/internal/surface/discord"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	cfg, err := config.LoadDiscord()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logrus.Fatalf("Failed to create Discord session: %v", err)
	}

	roller := dice.NewRandomRoller(&dice.Config{Seed: cfg.Dice.Seed})

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		data := i.ApplicationCommandData()
		if data.Name != "roll" {
			return
		}

		input := "6"
		for _, opt := range data.Options {
			if opt.Name == "dice" {
				input = opt.StringValue()
			}
		}

		// One short-lived dice session per interaction, rendered into
		// the invoking channel
		sess := session.New(&session.Config{
			Roller:       roller,
			Surface:      discordsurface.New(s, i.ChannelID),
			SpinDuration: cfg.Dice.SpinDuration,
		})

		if _, err := sess.Roll(input, cfg.Dice.CanZero, false); err != nil {
			logrus.Errorf("Roll failed: %v", err)
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Rolling " + input + "…",
			},
		}); err != nil {
			logrus.Errorf("Failed to respond to interaction: %v", err)
		}
	})

	if err := dg.Open(); err != nil {
		logrus.Fatalf("Failed to open Discord connection: %v", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logrus.Errorf("Failed to close Discord connection: %v", err)
		}
	}()

	command := &discordgo.ApplicationCommand{
		Name:        "roll",
		Description: "Roll a set of dice",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "dice",
				Description: "Comma separated die bounds, e.g. 6,8,20",
			},
		},
	}

	if _, err := dg.ApplicationCommandCreate(cfg.Discord.AppID, cfg.Discord.GuildID, command); err != nil {
		logrus.Fatalf("Failed to register commands: %v", err)
	}

	if cfg.Discord.GuildID != "" {
		logrus.Infof("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		logrus.Info("Registered global commands (may take up to 1 hour to propagate)")
	}

	logrus.Info("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logrus.Info("Shutting down...")
}
