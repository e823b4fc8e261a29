package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/JasminDreasond/Tiny-Dices/internal/config"
	"github.com/JasminDreasond/Tiny-Dices/internal/dice"
	"github.com/JasminDreasond/Tiny-Dices/internal/repositories/skins"
	"github.com/JasminDreasond/Tiny-Dices/internal/session"
	"github.com/JasminDreasond/Tiny-Dices/internal/surface/terminal"
)

func main() {
	var (
		diceList     = flag.String("dice", "6", "comma separated die bounds, e.g. 6,8,20")
		canZero      = flag.Bool("zero", false, "include 0 in every die's legal range")
		rollInfinity = flag.Bool("infinity", false, "keep dice spinning forever")
		skinName     = flag.String("skin", "", "named skin preset to apply")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	sess := session.New(&session.Config{
		Roller:       dice.NewRandomRoller(&dice.Config{Seed: cfg.Dice.Seed}),
		Surface:      terminal.New(os.Stdout),
		SpinDuration: cfg.Dice.SpinDuration,
	})
	defer sess.Destroy()

	if *skinName != "" {
		if err := applyPreset(sess, cfg, *skinName); err != nil {
			logrus.Warnf("Could not apply skin preset %q: %v", *skinName, err)
		}
	}

	outcomes, err := sess.Roll(*diceList, *canZero || cfg.Dice.CanZero, *rollInfinity)
	if err != nil {
		logrus.Fatalf("Roll failed: %v", err)
	}

	for i, outcome := range outcomes {
		logrus.WithFields(logrus.Fields{
			"die":      i,
			"result":   outcome.Result,
			"sequence": outcome.Sequence,
		}).Info("rolled")
	}

	if !*rollInfinity {
		// Let the settle signal reach the surface before exiting
		time.Sleep(cfg.Dice.SpinDuration + 100*time.Millisecond)
	}
}

// applyPreset loads a named skin from the preset store and pushes every
// slot through the session's validating setters
func applyPreset(sess *session.Session, cfg *config.Config, name string) error {
	repo := presetRepository(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	preset, err := repo.Get(ctx, name)
	if err != nil {
		return err
	}

	if err := sess.SetBgSkin(preset.Background); err != nil {
		return err
	}
	if err := sess.SetTextSkin(preset.Text); err != nil {
		return err
	}
	if err := sess.SetBorderSkin(preset.Border); err != nil {
		return err
	}
	if err := sess.SetBgImgSkin(preset.BackgroundImage, false); err != nil {
		return err
	}
	if err := sess.SetSelectionBgSkin(preset.SelectionBackground); err != nil {
		return err
	}
	return sess.SetSelectionTextSkin(preset.SelectionText)
}

func presetRepository(cfg *config.Config) skins.Repository {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		logrus.Debug("No REDIS_URL found, using in-memory presets")
		return skins.NewInMemory(nil)
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logrus.Warnf("Failed to parse Redis URL, using in-memory presets: %v", err)
		return skins.NewInMemory(nil)
	}

	return skins.NewRedis(redis.NewClient(opts), skins.NewClock())
}
