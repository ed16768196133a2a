package appointments

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reconcilerJobName = "notification_reconciler"

// NotificationReconciler periodically drains the booking notification retry
// queue. Only the instance holding the leader lock drains on a given tick.
type NotificationReconciler struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	redis         contracts.RedisRepository
	notifications contracts.NotificationRepository
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

func NewNotificationReconciler(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	redisRepository contracts.RedisRepository,
	notificationRepository contracts.NotificationRepository,
) *NotificationReconciler {
	return &NotificationReconciler{
		log:           log,
		cfg:           cfg,
		locker:        lockerSvc,
		redis:         redisRepository,
		notifications: notificationRepository,
	}
}

// Start schedules the reconciler on the configured cron spec.
func (r *NotificationReconciler) Start(ctx context.Context) {
	r.runCtx, r.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(r.cfg.Booking.ReconcilerCronSpec, func() { r.runOnce(r.runCtx) })
	if err != nil {
		r.log.Warn("NotificationReconciler.Start invalid cron spec, falling back to default",
			zap.String("cron_spec", r.cfg.Booking.ReconcilerCronSpec),
			zap.String("fallback_cron_spec", constvars.DefaultReconcilerCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		if _, err := c.AddFunc(constvars.DefaultReconcilerCronSpec, func() { r.runOnce(r.runCtx) }); err != nil {
			r.log.Error("NotificationReconciler.Start failed to schedule reconciler, queued notifications will not be retried",
				zap.Error(err),
			)
			return
		}
	}
	c.Start()
	r.cron = c
}

// Stop cancels in-flight runs and waits for the running job to return.
func (r *NotificationReconciler) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
}

func (r *NotificationReconciler) runOnce(ctx context.Context) {
	ctx = utils.WithRequestID(ctx, utils.GenerateJobRequestID(reconcilerJobName))
	requestID := utils.GetRequestID(ctx)

	ttl := r.cfg.Booking.ReconcilerLockTTL
	acquired, token, err := r.locker.TryLock(ctx, constvars.RedisKeyNotificationReconcilerLock, ttl)
	if err != nil {
		r.log.Warn("NotificationReconciler.runOnce leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		r.log.Debug("NotificationReconciler.runOnce leader lock held by another instance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer func() {
		if err := r.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyNotificationReconcilerLock, token); err != nil {
			r.log.Warn("NotificationReconciler.runOnce error releasing leader lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, constvars.RedisKeyNotificationReconcilerLock),
				zap.Error(err),
			)
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go r.refreshLeaderLock(refreshCtx, token)

	utils.LogOperation(r.log, reconcilerJobName, requestID, func() error {
		_, err := r.ReconcileOnce(ctx)
		return err
	})
}

func (r *NotificationReconciler) refreshLeaderLock(ctx context.Context, token string) {
	ttl := r.cfg.Booking.ReconcilerLockTTL
	if ttl <= 0 {
		return
	}
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := r.locker.Refresh(ctx, constvars.RedisKeyNotificationReconcilerLock, token, ttl); err != nil {
				r.log.Warn("NotificationReconciler.refreshLeaderLock failed to refresh leader lock TTL",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
					zap.Error(err),
				)
			}
		}
	}
}

// ReconcileOnce retries up to one batch of queued notifications and returns
// how many were written. The batch never exceeds the queue length seen at the
// start, so a re-queued item is attempted at most once per run. Items that
// keep failing are moved to the dead-letter list at the attempt limit.
//
// An item sits in the processing list while it is being retried and leaves it
// only after it was written or handed to another list. Whatever an earlier run
// left there is put back on the retry queue first.
func (r *NotificationReconciler) ReconcileOnce(ctx context.Context) (int, error) {
	requestID := utils.GetRequestID(ctx)
	batchSize := r.cfg.Booking.ReconcilerBatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	r.log.Info("NotificationReconciler.ReconcileOnce called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRetryBatchSizeKey, batchSize),
	)

	if err := r.restoreInFlight(ctx); err != nil {
		return 0, err
	}

	queued, err := r.redis.ListLength(ctx, constvars.RedisKeyNotificationRetryQueue)
	if err != nil {
		return 0, err
	}
	if int64(batchSize) > queued {
		batchSize = int(queued)
	}

	delivered := 0
	for i := 0; i < batchSize; i++ {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}

		raw, err := r.redis.MoveListItem(ctx, constvars.RedisKeyNotificationRetryQueue, constvars.RedisKeyNotificationProcessing)
		if err != nil {
			return delivered, err
		}
		if raw == "" {
			break
		}

		var pending models.PendingNotification
		if err := json.Unmarshal([]byte(raw), &pending); err != nil {
			r.log.Error("NotificationReconciler.ReconcileOnce dropping undecodable item to dead letter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			if err := r.settle(ctx, raw, constvars.RedisKeyNotificationDeadLetter, raw); err != nil {
				return delivered, err
			}
			continue
		}

		if _, err := r.notifications.CreateUserNotification(ctx, &pending.Notification); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				// Interrupted by shutdown, not a failed attempt.
				r.log.Warn("NotificationReconciler.ReconcileOnce interrupted, returning item to retry queue",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingAppointmentIDKey, pending.AppointmentID),
					zap.Error(err),
				)
				if err := r.settle(ctx, raw, constvars.RedisKeyNotificationRetryQueue, raw); err != nil {
					return delivered, errors.Join(ctxErr, err)
				}
				return delivered, ctxErr
			}

			target, payload := r.retryOrBury(ctx, raw, &pending, err)
			if err := r.settle(ctx, raw, target, payload); err != nil {
				return delivered, err
			}
			continue
		}

		delivered++
		r.log.Info("NotificationReconciler.ReconcileOnce delivered queued notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, pending.AppointmentID),
			zap.Int(constvars.LoggingRetryAttemptKey, pending.Attempts+1),
		)
		if err := r.settle(ctx, raw, "", ""); err != nil {
			return delivered, err
		}
	}

	r.log.Info("NotificationReconciler.ReconcileOnce succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingNotificationCountKey, delivered),
	)
	return delivered, nil
}

// restoreInFlight moves items stranded in the processing list by an
// interrupted run back onto the retry queue.
func (r *NotificationReconciler) restoreInFlight(ctx context.Context) error {
	for {
		raw, err := r.redis.MoveListItem(ctx, constvars.RedisKeyNotificationProcessing, constvars.RedisKeyNotificationRetryQueue)
		if err != nil {
			r.log.Error("NotificationReconciler.restoreInFlight error calling RedisRepository.MoveListItem",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
			return err
		}
		if raw == "" {
			return nil
		}
		r.log.Warn("NotificationReconciler.restoreInFlight restored notification left by an interrupted run",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		)
	}
}

// retryOrBury counts the failed attempt and picks the list the item goes to
// next along with its new payload.
func (r *NotificationReconciler) retryOrBury(ctx context.Context, raw string, pending *models.PendingNotification, cause error) (string, string) {
	requestID := utils.GetRequestID(ctx)
	pending.Attempts++
	pending.LastError = cause.Error()

	target := constvars.RedisKeyNotificationRetryQueue
	if pending.Attempts >= r.cfg.Booking.NotificationMaxAttempts {
		target = constvars.RedisKeyNotificationDeadLetter
		r.log.Error("NotificationReconciler.retryOrBury moving notification to dead letter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, pending.AppointmentID),
			zap.Error(exceptions.ErrNotificationRetryExhausted(cause, pending.Attempts)),
		)
	} else {
		r.log.Warn("NotificationReconciler.retryOrBury re-queueing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, pending.AppointmentID),
			zap.Int(constvars.LoggingRetryAttemptKey, pending.Attempts),
			zap.Error(cause),
		)
	}

	payload, err := json.Marshal(pending)
	if err != nil {
		r.log.Error("NotificationReconciler.retryOrBury cannot encode pending notification, burying original",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(errors.Join(exceptions.ErrCannotMarshalJSON(err), cause)),
		)
		return constvars.RedisKeyNotificationDeadLetter, raw
	}
	return target, string(payload)
}

// settle pushes payload to target, when one is given, and then removes raw
// from the processing list. Neither write is cut short by ctx cancellation.
func (r *NotificationReconciler) settle(ctx context.Context, raw, target, payload string) error {
	requestID := utils.GetRequestID(ctx)
	ctx = context.WithoutCancel(ctx)

	if target != "" {
		if err := r.redis.PushToList(ctx, target, payload); err != nil {
			r.log.Error("NotificationReconciler.settle error calling RedisRepository.PushToList, item kept in processing list",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, target),
				zap.Error(err),
			)
			return err
		}
	}

	if err := r.redis.RemoveFromList(ctx, constvars.RedisKeyNotificationProcessing, raw); err != nil {
		r.log.Error("NotificationReconciler.settle error calling RedisRepository.RemoveFromList",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyNotificationProcessing),
			zap.Error(err),
		)
		return err
	}
	return nil
}
