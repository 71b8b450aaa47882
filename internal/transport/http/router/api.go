package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"talentdesk/internal/core/auth"
	"talentdesk/internal/domain"
	"talentdesk/internal/service"
	mdw "talentdesk/internal/transport/http/middleware"
)

// Services bundles everything the API surface needs.
type Services struct {
	Users      domain.UserRepository
	Candidates *service.CandidateService
	Jobs       *service.JobService
	Clients    *service.ClientService
	Campaigns  *service.CampaignService
	Analytics  *service.AnalyticsService
	Import     *service.ImportService
}

func NewAPIEngine(l *zap.Logger, svcs Services, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	mountAuthActions(api, authed, svcs.Users, jwter)
	mountATSActions(authed, svcs)

	return r
}
