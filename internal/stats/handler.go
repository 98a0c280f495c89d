package stats

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aayakar/webinar-backend/pkg/response"
)

const recentLimit = 10

// Overview holds the headline counts and growth deltas.
type Overview struct {
	Total     int    `json:"total"`
	Today     int    `json:"today"`
	Yesterday int    `json:"yesterday"`
	ThisWeek  int    `json:"thisWeek"`
	ThisMonth int    `json:"thisMonth"`
	Growth    Growth `json:"growth"`
}

// StatsResponse is the payload for GET /api/v1/users/stats.
type StatsResponse struct {
	Overview            Overview             `json:"overview"`
	ByStatus            map[string]int       `json:"byStatus"`
	DailyRegistrations  []DailyCount         `json:"dailyRegistrations"`
	RecentRegistrations []RecentRegistration `json:"recentRegistrations"`
}

// Handler handles GET /api/v1/users/stats.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates a stats handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger, now: time.Now}
}

// Get handles GET /api/v1/users/stats. Everything is computed fresh per call.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.now()
	w := ComputeWindows(now)

	total, err := h.repo.CountAll(ctx)
	if err != nil {
		h.logger.Error("count total failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}
	today, err := h.repo.CountSince(ctx, w.Midnight)
	if err != nil {
		h.logger.Error("count today failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}
	yesterday, err := h.repo.CountBetween(ctx, w.Yesterday, w.Midnight)
	if err != nil {
		h.logger.Error("count yesterday failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}
	thisWeek, err := h.repo.CountSince(ctx, w.WeekStart)
	if err != nil {
		h.logger.Error("count week failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}
	thisMonth, err := h.repo.CountSince(ctx, w.MonthStart)
	if err != nil {
		h.logger.Error("count month failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}

	byStatus, err := h.repo.CountByStatus(ctx)
	if err != nil {
		h.logger.Error("count by status failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}
	dates, err := h.repo.RegistrationDatesSince(ctx, w.ThirtyDaysAgo)
	if err != nil {
		h.logger.Error("daily counts failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}
	daily := BucketByDay(dates, now.Location())
	recent, err := h.repo.Recent(ctx, recentLimit)
	if err != nil {
		h.logger.Error("recent registrations failed", zap.Error(err))
		response.Internal(c, "Failed to compute statistics")
		return
	}

	response.OK(c, StatsResponse{
		Overview: Overview{
			Total:     total,
			Today:     today,
			Yesterday: yesterday,
			ThisWeek:  thisWeek,
			ThisMonth: thisMonth,
			Growth:    ComputeGrowth(total, today, yesterday, thisWeek, thisMonth),
		},
		ByStatus:            byStatus,
		DailyRegistrations:  daily,
		RecentRegistrations: recent,
	})
}
