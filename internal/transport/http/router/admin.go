package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talentdesk/internal/core/auth"
	"talentdesk/internal/core/server"
	"talentdesk/internal/service"
	httpez "talentdesk/internal/transport/http/ez"
	mdw "talentdesk/internal/transport/http/middleware"
)

// NewAdminEngine serves the back office. Every route requires an admin token.
func NewAdminEngine(l *zap.Logger, users *service.UserService, jwter *auth.JWTer) *gin.Engine {
	r := server.NewRouter(l)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin")
	admin.Use(mdw.RateLimitPerIP(50, 100), mdw.AuthJWT(jwter, "admin"))
	ez := httpez.New(admin)

	type pageQ struct {
		Q           string `form:"q"`
		WithDeleted bool   `form:"with_deleted"`
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
	}
	type userPage struct {
		Total int64       `json:"total"`
		Items interface{} `json:"items"`
	}
	httpez.RegisterAction[pageQ, userPage](ez, httpez.Action[pageQ, userPage]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *pageQ) (userPage, error) {
			items, total, err := users.List(in.Q, in.WithDeleted, in.Offset, in.Limit)
			if err != nil {
				return userPage{}, err
			}
			return userPage{Total: total, Items: items}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := users.Ban(id); err != nil {
				return nil, err
			}
			return gin.H{"id": id, "banned": true}, nil
		},
	})

	return r
}
