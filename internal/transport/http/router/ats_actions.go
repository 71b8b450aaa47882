package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentdesk/internal/domain"
	"talentdesk/internal/record"
	"talentdesk/internal/service"
	httpez "talentdesk/internal/transport/http/ez"
)

// listQ is the filter state every listing page sends.
type listQ struct {
	Q      string `form:"q"`
	Status string `form:"status,default=all"`
	Sort   string `form:"sort"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

func (q listQ) opts() service.ListOptions {
	return service.ListOptions{
		Search: q.Q,
		Status: q.Status,
		Sort:   q.Sort,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
}

type statusIn struct {
	Status string `json:"status" binding:"required"`
}

func mountATSActions(authed *gin.RouterGroup, svcs Services) {
	ez := httpez.New(authed)

	// --- candidates ---

	httpez.RegisterAction[listQ, []domain.Candidate](ez, httpez.Action[listQ, []domain.Candidate]{
		Method: http.MethodGet,
		Path:   "/candidates",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Candidate, error) {
			return svcs.Candidates.List(c.Request.Context(), c.GetString("userId"), in.opts())
		},
	})

	httpez.RegisterAction[service.CreateCandidateInput, *domain.Candidate](ez, httpez.Action[service.CreateCandidateInput, *domain.Candidate]{
		Method: http.MethodPost,
		Path:   "/candidates",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *service.CreateCandidateInput) (*domain.Candidate, error) {
			return svcs.Candidates.Create(c.Request.Context(), c.GetString("userId"), *in)
		},
	})

	httpez.RegisterAction[statusIn, gin.H](ez, httpez.Action[statusIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/candidates/:id/status",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *statusIn) (gin.H, error) {
			id := c.Param("id")
			err := svcs.Candidates.UpdateStatus(c.Request.Context(), c.GetString("userId"), id, domain.CandidateStatus(in.Status))
			if err != nil {
				return nil, err
			}
			return gin.H{"id": id, "status": in.Status}, nil
		},
	})

	// --- jobs ---

	httpez.RegisterAction[listQ, []domain.Job](ez, httpez.Action[listQ, []domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Job, error) {
			return svcs.Jobs.List(c.Request.Context(), c.GetString("userId"), in.opts())
		},
	})

	httpez.RegisterAction[service.CreateJobInput, *domain.Job](ez, httpez.Action[service.CreateJobInput, *domain.Job]{
		Method: http.MethodPost,
		Path:   "/jobs",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *service.CreateJobInput) (*domain.Job, error) {
			return svcs.Jobs.Create(c.Request.Context(), c.GetString("userId"), *in)
		},
	})

	httpez.RegisterAction[statusIn, *domain.Job](ez, httpez.Action[statusIn, *domain.Job]{
		Method: http.MethodPost,
		Path:   "/jobs/:id/status",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *statusIn) (*domain.Job, error) {
			return svcs.Jobs.UpdateStatus(c.Request.Context(), c.GetString("userId"), c.Param("id"), domain.JobStatus(in.Status))
		},
	})

	// --- clients ---

	httpez.RegisterAction[listQ, []domain.Client](ez, httpez.Action[listQ, []domain.Client]{
		Method: http.MethodGet,
		Path:   "/clients",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Client, error) {
			return svcs.Clients.List(c.Request.Context(), c.GetString("userId"), in.opts())
		},
	})

	httpez.RegisterAction[service.CreateClientInput, *domain.Client](ez, httpez.Action[service.CreateClientInput, *domain.Client]{
		Method: http.MethodPost,
		Path:   "/clients",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *service.CreateClientInput) (*domain.Client, error) {
			return svcs.Clients.Create(c.Request.Context(), c.GetString("userId"), *in)
		},
	})

	httpez.RegisterAction[statusIn, gin.H](ez, httpez.Action[statusIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/clients/:id/status",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *statusIn) (gin.H, error) {
			id := c.Param("id")
			err := svcs.Clients.UpdateStatus(c.Request.Context(), c.GetString("userId"), id, domain.ClientStatus(in.Status))
			if err != nil {
				return nil, err
			}
			return gin.H{"id": id, "status": in.Status}, nil
		},
	})

	// --- campaigns ---

	httpez.RegisterAction[listQ, []domain.Campaign](ez, httpez.Action[listQ, []domain.Campaign]{
		Method: http.MethodGet,
		Path:   "/campaigns",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Campaign, error) {
			return svcs.Campaigns.List(c.Request.Context(), c.GetString("userId"), in.opts())
		},
	})

	httpez.RegisterAction[service.CreateCampaignInput, *domain.Campaign](ez, httpez.Action[service.CreateCampaignInput, *domain.Campaign]{
		Method: http.MethodPost,
		Path:   "/campaigns",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *service.CreateCampaignInput) (*domain.Campaign, error) {
			return svcs.Campaigns.Create(c.Request.Context(), c.GetString("userId"), *in)
		},
	})

	type generateIn struct {
		Subject string `json:"subject" binding:"required"`
		Type    string `json:"type" binding:"required"`
	}
	httpez.RegisterAction[generateIn, gin.H](ez, httpez.Action[generateIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/campaigns/generate",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *generateIn) (gin.H, error) {
			text, err := svcs.Campaigns.GenerateContent(c.Request.Context(), in.Subject, domain.CampaignType(in.Type))
			if err != nil {
				return nil, err
			}
			return gin.H{"text": text}, nil
		},
	})

	httpez.RegisterAction[statusIn, *domain.Campaign](ez, httpez.Action[statusIn, *domain.Campaign]{
		Method: http.MethodPost,
		Path:   "/campaigns/:id/status",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *statusIn) (*domain.Campaign, error) {
			return svcs.Campaigns.UpdateStatus(c.Request.Context(), c.GetString("userId"), c.Param("id"), domain.CampaignStatus(in.Status))
		},
	})

	// --- analytics ---

	httpez.RegisterAction[struct{}, *domain.Analytics](ez, httpez.Action[struct{}, *domain.Analytics]{
		Method: http.MethodGet,
		Path:   "/analytics/summary",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Analytics, error) {
			return svcs.Analytics.Summary(c.Request.Context(), c.GetString("userId"))
		},
	})

	httpez.RegisterAction[struct{}, *domain.Analytics](ez, httpez.Action[struct{}, *domain.Analytics]{
		Method: http.MethodPost,
		Path:   "/analytics/refresh",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Analytics, error) {
			return svcs.Analytics.Refresh(c.Request.Context(), c.GetString("userId"))
		},
	})

	// --- legacy import ---

	type importIn struct {
		Records []record.Raw `json:"records" binding:"required"`
	}
	httpez.RegisterAction[importIn, *service.ImportReport](ez, httpez.Action[importIn, *service.ImportReport]{
		Method: http.MethodPost,
		Path:   "/import/jobs",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *importIn) (*service.ImportReport, error) {
			return svcs.Import.ImportJobs(c.Request.Context(), c.GetString("userId"), in.Records), nil
		},
	})
	httpez.RegisterAction[importIn, *service.ImportReport](ez, httpez.Action[importIn, *service.ImportReport]{
		Method: http.MethodPost,
		Path:   "/import/candidates",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *importIn) (*service.ImportReport, error) {
			return svcs.Import.ImportCandidates(c.Request.Context(), c.GetString("userId"), in.Records), nil
		},
	})
	httpez.RegisterAction[importIn, *service.ImportReport](ez, httpez.Action[importIn, *service.ImportReport]{
		Method: http.MethodPost,
		Path:   "/import/campaigns",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *importIn) (*service.ImportReport, error) {
			return svcs.Import.ImportCampaigns(c.Request.Context(), c.GetString("userId"), in.Records), nil
		},
	})
}
