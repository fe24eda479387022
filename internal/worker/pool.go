// Package worker runs the async side of the system: low-stock alerts queued
// through a Redis list and drained by a small BRPOP pool. Everything here is
// best-effort — a missing Redis or SMTP configuration downgrades alerts to
// log lines, never blocks a mutation.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
)

const QueueAlerts = "jobs:alerts"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// LowStockAlert is the payload for one product crossing its threshold.
type LowStockAlert struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}

// Dispatcher enqueues async jobs into Redis lists. Nil-safe: without a Redis
// client the job is logged and dropped.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueLowStockAlert pushes one alert job.
func (d *Dispatcher) EnqueueLowStockAlert(ctx context.Context, alert LowStockAlert) error {
	if d == nil || d.rdb == nil {
		log.Debug().Str("product", alert.Name).Int("stock", alert.CurrentStock).
			Msg("low stock (no queue configured)")
		return nil
	}
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: "low_stock", Payload: payload})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueAlerts, encoded).Err()
}

// StartPool launches numWorkers goroutines draining the alert queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartPool(ctx context.Context, rdb *redis.Client, mailer *infra.Mailer, alertEmail string, numWorkers int) {
	if rdb == nil {
		return
	}
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, mailer, alertEmail, i)
	}
	log.Info().Msgf("alert worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, mailer *infra.Mailer, alertEmail string, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueAlerts).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(mailer, alertEmail, result[1])
		}
	}
}

func processJob(mailer *infra.Mailer, alertEmail, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}
	if job.Type != "low_stock" {
		log.Warn().Str("type", job.Type).Msg("unknown job type")
		return
	}

	var alert LowStockAlert
	if err := json.Unmarshal(job.Payload, &alert); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal low-stock payload")
		return
	}

	log.Info().Str("sku", alert.SKU).Str("product", alert.Name).
		Int("stock", alert.CurrentStock).Int("min", alert.MinStock).
		Msg("low stock alert")

	if !mailer.Configured() || alertEmail == "" {
		return
	}
	subject := fmt.Sprintf("Stock bajo: %s", alert.Name)
	body := fmt.Sprintf("El producto %s (%s) tiene stock %d, por debajo del mínimo %d.",
		alert.Name, alert.SKU, alert.CurrentStock, alert.MinStock)
	if err := mailer.Send(alertEmail, subject, body); err != nil {
		log.Error().Err(err).Str("sku", alert.SKU).Msg("failed to send low-stock email")
	}
}
