package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/studymood/studymood-backend/internal/analytics"
	"github.com/studymood/studymood-backend/internal/data/repos"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*analytics.Report, error)
	GetSuggestions(ctx context.Context) ([]analytics.Suggestion, error)
}

type analyticsService struct {
	db      *gorm.DB
	log     *logger.Logger
	logRepo repos.StudyLogRepo
	loc     *time.Location
	now     func() time.Time
}

func NewAnalyticsService(db *gorm.DB, log *logger.Logger, logRepo repos.StudyLogRepo, loc *time.Location) AnalyticsService {
	serviceLog := log.With("service", "AnalyticsService")
	if loc == nil {
		loc = time.UTC
	}
	return &analyticsService{
		db:      db,
		log:     serviceLog,
		logRepo: logRepo,
		loc:     loc,
		now:     time.Now,
	}
}

func (as *analyticsService) GetAnalytics(ctx context.Context) (*analytics.Report, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := as.logRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDataUnavailable, err)
	}

	now := as.now()
	report := analytics.Aggregate(logs, now, analytics.DefaultWindowDays, as.loc)
	report.Streak = analytics.Streak(logs, now, as.loc)
	return &report, nil
}

func (as *analyticsService) GetSuggestions(ctx context.Context) ([]analytics.Suggestion, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := as.logRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDataUnavailable, err)
	}

	now := as.now()
	report := analytics.Aggregate(logs, now, analytics.DefaultWindowDays, as.loc)
	report.Streak = analytics.Streak(logs, now, as.loc)
	return analytics.GenerateSuggestions(report, logs, as.loc), nil
}
