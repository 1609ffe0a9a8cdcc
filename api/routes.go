package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/police-department/evidence-manager/api/middleware"
	"github.com/police-department/evidence-manager/usecases"
	"github.com/police-department/evidence-manager/usecases/security"
	"github.com/police-department/evidence-manager/utils"
)

const (
	defaultTimeout         = 10 * time.Second
	defaultMaxEvidenceSize = 10 * 1024 * 1024 // 10MB
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	if duration <= 0 {
		duration = defaultTimeout
	}
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth utils.Authentication) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1", timeoutMiddleware(conf.DefaultTimeout))
	if !conf.IsDevelopment() {
		v1.Use(middleware.ApiKey(conf.ApiKey))
	}

	loginLimiter := middleware.NewIPRateLimiter(conf.LoginRateLimitPerMinute)
	v1.POST("/login", loginLimiter.Middleware, handleLogin(uc))

	authenticated := v1.Group("", auth.Middleware)

	admin := authenticated.Group("", requirePolicy(security.PolicyIsAdministrator))
	admin.POST("/officers", handlePostOfficer(uc))

	officer := authenticated.Group("", requirePolicy(security.PolicyIsPoliceOfficer))
	officer.GET("/cases/officer/:officer_id", handleListCasesOfOfficer(uc))
	officer.POST("/cases", handlePostCase(uc))
	officer.GET("/cases/:case_id", handleGetCase(uc))
	officer.PATCH("/cases/:case_id", handlePatchCase(uc))
	officer.DELETE("/cases/:case_id", handleDeleteCase(uc))

	maxEvidenceSize := conf.maxEvidenceSizeBytes()
	if maxEvidenceSize <= 0 {
		maxEvidenceSize = defaultMaxEvidenceSize
	}
	officer.GET("/cases/:case_id/evidences", handleListEvidencesOfCase(uc))
	officer.POST("/cases/:case_id/evidences", limits.RequestSizeLimiter(maxEvidenceSize), handlePostEvidence(uc))
	officer.GET("/evidences/:evidence_id", handleGetEvidence(uc))
	officer.GET("/evidences/:evidence_id/image", handleGetEvidenceImage(uc))
	officer.DELETE("/evidences/:evidence_id", handleDeleteEvidence(uc))
}
