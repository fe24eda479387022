package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
)

// Health returns a JSON health check response. It probes the snapshot
// backend with a read (a missing snapshot is healthy, only I/O failures are
// not) and Redis when alerts are wired.
func Health(snap infra.SnapshotStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		snapStatus := "ok"
		if _, err := snap.Load(ctx); err != nil && !errors.Is(err, infra.ErrNoSnapshot) {
			snapStatus = "error"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		status := http.StatusOK
		if snapStatus != "ok" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"snapshot": snapStatus,
			"redis":    redisStatus,
		})
	}
}
