package main

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/redis"
	"doccare-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func deadLetterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dead-letter",
		Short: "Inspect and replay undelivered booking notifications",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the dead letter and retry queue sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := connectRedis()
			defer client.Close()
			repository := redis.NewRedisRepository(client)

			dead, err := repository.ListLength(cmd.Context(), constvars.RedisKeyNotificationDeadLetter)
			if err != nil {
				return err
			}
			retry, err := repository.ListLength(cmd.Context(), constvars.RedisKeyNotificationRetryQueue)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dead letter: %d\nretry queue: %d\n", dead, retry)
			return nil
		},
	})

	requeueCmd := &cobra.Command{
		Use:   "requeue",
		Short: "Move dead letter entries back to the retry queue with a fresh attempt budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			log := newLogger()

			client := connectRedis()
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			moved, err := requeueDeadLetters(ctx, redis.NewRedisRepository(client), limit, log)
			log.WithField("moved", moved).Info("dead letter requeue finished")
			return err
		},
	}
	requeueCmd.Flags().Int("limit", 100, "Maximum number of entries to move")
	cmd.AddCommand(requeueCmd)

	return cmd
}

// requeueDeadLetters moves up to limit entries from the dead letter list to
// the retry queue. Entries that cannot be decoded are put back untouched.
func requeueDeadLetters(ctx context.Context, repository contracts.RedisRepository, limit int, log *logrus.Logger) (int, error) {
	pending, err := repository.ListLength(ctx, constvars.RedisKeyNotificationDeadLetter)
	if err != nil {
		return 0, err
	}
	if int64(limit) > pending {
		limit = int(pending)
	}

	moved := 0
	for i := 0; i < limit; i++ {
		raw, err := repository.PopFromList(ctx, constvars.RedisKeyNotificationDeadLetter)
		if err != nil {
			return moved, err
		}
		if raw == "" {
			break
		}

		var notification models.PendingNotification
		if err := json.Unmarshal([]byte(raw), &notification); err != nil {
			log.WithError(err).Warn("keeping undecodable dead letter entry")
			if err := repository.PushToList(ctx, constvars.RedisKeyNotificationDeadLetter, raw); err != nil {
				return moved, err
			}
			continue
		}

		notification.Attempts = 0
		notification.LastError = ""
		payload, err := json.Marshal(notification)
		if err != nil {
			return moved, err
		}
		if err := repository.PushToList(ctx, constvars.RedisKeyNotificationRetryQueue, string(payload)); err != nil {
			return moved, err
		}
		log.WithField("appointment_id", notification.AppointmentID).Debug("dead letter entry requeued")
		moved++
	}
	return moved, nil
}
