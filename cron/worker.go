package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"carebook/config"
	"carebook/services/scheduling"

	"github.com/hibiken/asynq"
)

const TypeCompletionSweep = "appointments:complete_sweep"

// InitSweepWorker runs the async worker that marks elapsed appointments
// completed. Transitions are time-driven, so the sweep is the only writer
// for the completed status besides explicit PATCH calls.
func InitSweepWorker(appts scheduling.AppointmentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCompletionSweep, handleCompletionSweep(appts))

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runSweepScheduler(redisOpts)
}

// runSweepScheduler enqueues the periodic sweep task.
func runSweepScheduler(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.SweepIntervalMin
	if interval <= 0 {
		interval = 5
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	cronspec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(cronspec, asynq.NewTask(TypeCompletionSweep, nil)); err != nil {
		log.Printf("[SweepWorker] Failed to register sweep task: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[SweepWorker] Scheduler stopped: %v", err)
	}
}

func handleCompletionSweep(appts scheduling.AppointmentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := appts.CompleteElapsed(ctx, time.Now())
		if err != nil {
			log.Printf("[SweepHandler] Sweep failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[SweepHandler] Marked %d appointments completed", n)
		}
		return nil
	}
}
