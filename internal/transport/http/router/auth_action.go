package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"talentdesk/internal/core/auth"
	"talentdesk/internal/domain"
	httpez "talentdesk/internal/transport/http/ez"
	"talentdesk/pkg/utils"
)

// mountAuthActions wires /auth/login (public) and /me (authed). Login
// auto-registers on first sight of an email and issues a JWT either way.
func mountAuthActions(api, authed *gin.RouterGroup, users domain.UserRepository, jwter *auth.JWTer) {
	ezPublic := httpez.New(api)

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"     binding:"omitempty,max=64"` // used on first registration
	}
	type userOut struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		Role        string `json:"role"`
	}
	type loginOut struct {
		Token string  `json:"token"`
		IsNew bool    `json:"isNew"`
		User  userOut `json:"user"`
	}

	httpez.RegisterAction[loginIn, loginOut](ezPublic, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			email := strings.TrimSpace(strings.ToLower(in.Email))

			u, err := users.FindByEmail(email)
			if err != nil {
				return loginOut{}, httpez.Internal("db error", err)
			}

			isNew := false
			if u == nil {
				name := strings.TrimSpace(in.Name)
				if name == "" {
					if at := strings.IndexByte(email, '@'); at > 0 {
						name = email[:at]
					} else {
						name = "user"
					}
				}
				u = &domain.User{
					ID:           utils.NewID(),
					Email:        email,
					DisplayName:  name,
					PasswordHash: utils.HashPassword(in.Password),
					Role:         domain.RoleRecruiter,
				}
				if e := users.Create(u); e != nil {
					// unique-conflict race: another request registered first
					if u2, e2 := users.FindByEmail(email); e2 == nil && u2 != nil {
						u = u2
					} else {
						return loginOut{}, httpez.Internal("login failed", e)
					}
				} else {
					isNew = true
				}
			}
			if !isNew && !utils.CheckPassword(in.Password, u.PasswordHash) {
				return loginOut{}, httpez.Unauthorized("invalid credentials")
			}

			tok, e := jwter.Issue(u.ID, string(u.Role))
			if e != nil || tok == "" {
				return loginOut{}, httpez.Internal("issue token failed", e)
			}
			return loginOut{
				Token: tok,
				IsNew: isNew,
				User:  userOut{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: string(u.Role)},
			}, nil
		},
	})

	ezAuth := httpez.New(authed)

	httpez.RegisterAction[struct{}, userOut](ezAuth, httpez.Action[struct{}, userOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (userOut, error) {
			uid := c.GetString("userId")
			u, err := users.FindByID(uid)
			if err != nil {
				return userOut{}, httpez.Internal("db error", err)
			}
			if u == nil {
				return userOut{}, httpez.NotFound("user not found")
			}
			return userOut{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: string(u.Role)}, nil
		},
	})
}
