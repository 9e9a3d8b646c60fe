package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kweaver-ai/kweaver-go-lib/rest"
)

type HandlerRoute struct {
	ac AnalyticsController
	sc SummaryController
	tc SlaController
}

func (r *HandlerRoute) SetRouter(app *gin.Engine) {
	app.GET("/health", func(c *gin.Context) {
		rest.ReplyOK(c, http.StatusOK, nil)
	})
	group := app.Group("/api/reliability-analytics/v1/")
	group.GET("dashboard", r.ac.Dashboard)
	group.GET("health-metrics", r.ac.Health)
	group.GET("summary/operational", r.sc.Operational)
	group.GET("summary/status", r.sc.Status)
	group.GET("summary/severity", r.sc.Severity)
	group.GET("sla-targets", r.tc.Get)
	group.PUT("sla-targets", r.tc.Put)
}
