package httpserver

import (
	"net/http"

	"model-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports process health and the compute device selected at startup.
// @Summary Health Check
// @Description Check if the service is healthy and which device the model runs on
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /healthz [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status": "ok",
		"device": srv.device,
	})
}

// readyCheck runs the configured readiness probes.
// @Summary Readiness Check
// @Description Check if the service is ready to serve inference traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	for _, check := range srv.readyChecks {
		if err := check(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"service": srv.serviceName,
		"device":  srv.device,
	})
}
