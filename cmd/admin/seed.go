package main

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/core/doctors"
	"doccare-service/internal/app/services/core/settings"
	"doccare-service/internal/app/services/shared/redis"
	"doccare-service/internal/pkg/constvars"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data into MongoDB",
	}

	doctorsCmd := &cobra.Command{
		Use:   "doctors",
		Short: "Upsert doctors from a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			log := newLogger()

			client, dbName := connectMongo()
			defer client.Disconnect(context.Background())

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			count, err := seedDoctors(ctx, doctors.NewDoctorMongoRepository(client, dbName), file, log)
			if err != nil {
				return err
			}
			log.WithField("count", count).Info("doctors seeded")
			return nil
		},
	}
	doctorsCmd.Flags().String("file", "./seed/doctors.json", "Path to the doctors JSON file")
	cmd.AddCommand(doctorsCmd)

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Write the notification header and footer",
		RunE: func(cmd *cobra.Command, args []string) error {
			header, _ := cmd.Flags().GetString("header")
			footer, _ := cmd.Flags().GetString("footer")
			log := newLogger()

			client, dbName := connectMongo()
			defer client.Disconnect(context.Background())

			redisClient := connectRedis()
			defer redisClient.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			return storeSettings(ctx,
				settings.NewSettingsMongoRepository(client, dbName),
				redis.NewRedisRepository(redisClient),
				&models.Settings{Header: header, Footer: footer},
				log,
			)
		},
	}
	settingsCmd.Flags().String("header", "", "Notification header, empty keeps the default")
	settingsCmd.Flags().String("footer", "", "Notification footer, empty keeps the default")
	cmd.AddCommand(settingsCmd)
	cmd.AddCommand(portraitCmd())

	return cmd
}

func seedDoctors(ctx context.Context, repository contracts.DoctorRepository, path string, log *logrus.Logger) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var entries []models.Doctor
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}

	seeded := 0
	for i := range entries {
		doctor := &entries[i]
		if err := doctor.Validate(); err != nil {
			log.WithField("index", i).WithError(err).Warn("skipping invalid doctor")
			continue
		}
		id, err := repository.Upsert(ctx, doctor)
		if err != nil {
			return seeded, fmt.Errorf("upsert doctor %q: %w", doctor.Name, err)
		}
		log.WithFields(logrus.Fields{"id": id, "name": doctor.Name}).Debug("doctor upserted")
		seeded++
	}
	return seeded, nil
}

// storeSettings writes the custom content and drops the cached copy so the
// API serves the new header and footer on the next booking.
func storeSettings(ctx context.Context, repository contracts.SettingsRepository, cache contracts.RedisRepository, content *models.Settings, log *logrus.Logger) error {
	if err := repository.UpsertCustomContent(ctx, content); err != nil {
		return err
	}

	if err := cache.Delete(ctx, constvars.RedisKeySettingsCustomContent); err != nil {
		log.WithError(err).WithField("key", constvars.RedisKeySettingsCustomContent).
			Warn("notification settings stored, cached copy not cleared and expires with the settings cache TTL")
		return nil
	}
	log.Info("notification settings stored and cache cleared")
	return nil
}
