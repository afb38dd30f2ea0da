package handler

import (
	"context"
	"net/http"
	"time"

	"gestorcash/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Root describes the service.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "GestorCash API",
		"version": "1.0.0",
		"docs":    "/swagger/index.html",
	})
}

// Health returns a JSON health check response.
// DB and Redis are pinged concurrently; a nil Redis client reports "disabled".
// Never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) gin.HandlerFunc {
	pingDB := func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
	var pingRedis pinger
	if rdb != nil {
		pingRedis = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	mail := func() string {
		if !mailer.Enabled() {
			return "disabled"
		}
		return mailer.BreakerState().String()
	}
	return health(pingDB, pingRedis, mail)
}

type pinger func(ctx context.Context) error

// health runs each ping to completion under the shared timeout; one failing
// dependency does not cancel the others.
func health(pingDB, pingRedis pinger, mail func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus, redisStatus := "connected", "disabled"
		var g errgroup.Group
		g.Go(func() error {
			err := pingDB(ctx)
			if err != nil {
				dbStatus = "error"
			}
			return err
		})
		if pingRedis != nil {
			redisStatus = "connected"
			g.Go(func() error {
				err := pingRedis(ctx)
				if err != nil {
					redisStatus = "error"
				}
				return err
			})
		}
		healthy := g.Wait() == nil

		status, label := http.StatusOK, "healthy"
		if !healthy {
			status, label = http.StatusServiceUnavailable, "unhealthy"
		}
		c.JSON(status, gin.H{
			"status": label,
			"db":     dbStatus,
			"redis":  redisStatus,
			"mail":   mail(),
		})
	}
}
