// Package status exposes the HTTP status API served next to gRPC.
package status

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/mutex"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/printjob"
	printerv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/printer/v1"
)

// JobLister fetches the print server's job history on a peer's behalf.
type JobLister interface {
	ListJobs(ctx context.Context, limit int32) (*printerv1.ListJobsResponse, error)
}

// RegisterPeerRoutes registers the peer's health, status and job-history
// endpoints. /jobs proxies the print server so operators can inspect the
// cluster's output from any peer.
func RegisterPeerRoutes(router *gin.Engine, engine *mutex.Engine, jobs JobLister) {
	router.GET("/health", handleHealth)
	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Snapshot())
	})
	router.GET("/jobs", func(c *gin.Context) {
		var query struct {
			Limit int32 `form:"limit"`
		}
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}

		resp, err := jobs.ListJobs(c.Request.Context(), query.Limit)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "print server unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"jobs":       resp.GetJobs(),
			"totalCount": resp.GetTotalCount(),
		})
	})
}

// RegisterPrintServerRoutes registers the print server's health and job
// history endpoints.
func RegisterPrintServerRoutes(router *gin.Engine, store printjob.Store) {
	router.GET("/health", handleHealth)
	router.GET("/jobs", func(c *gin.Context) {
		var query struct {
			Limit int32 `form:"limit"`
		}
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}

		jobs, err := store.List(c.Request.Context(), query.Limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
			return
		}
		total, err := store.Count(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count jobs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"jobs":       jobs,
			"totalCount": total,
		})
	})
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
