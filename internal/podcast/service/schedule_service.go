package service

import (
	"context"
	"fmt"
	"time"

	"stock-intel/internal/podcast/dto"
	"stock-intel/pkg/logger"

	"github.com/robfig/cron/v3"
)

// ScheduleService runs directory uploads on a cron schedule.
type ScheduleService interface {
	Start(ctx context.Context) error
	RunOnce(ctx context.Context) *dto.DirectoryResult
	Next(from time.Time) time.Time
}

// NewScheduleService creates a new ScheduleService. The cron expression uses the standard five fields.
func NewScheduleService(uploader UploaderService, cronExpression string, req dto.DirectoryUploadRequest, log *logger.Logger) (ScheduleService, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cronExpression)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", cronExpression, err)
	}

	return &scheduleService{
		uploader:       uploader,
		cronExpression: cronExpression,
		schedule:       schedule,
		parser:         parser,
		req:            req,
		logger:         log,
	}, nil
}

type scheduleService struct {
	uploader       UploaderService
	cronExpression string
	schedule       cron.Schedule
	parser         cron.Parser
	req            dto.DirectoryUploadRequest
	logger         *logger.Logger
}

// Start registers the upload job and blocks until ctx is cancelled.
func (s *scheduleService) Start(ctx context.Context) error {
	c := cron.New(cron.WithParser(s.parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	if _, err := c.AddFunc(s.cronExpression, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to register upload job: %w", err)
	}

	c.Start()
	s.logger.Info("Podcast upload scheduler started",
		logger.StringField("cron", s.cronExpression),
		logger.StringField("directory", s.req.Directory),
		logger.Field("next_run", s.Next(time.Now())),
	)

	<-ctx.Done()

	s.logger.Info("Podcast upload scheduler stopping")
	<-c.Stop().Done()
	return nil
}

// RunOnce performs a single directory upload. Errors are folded into the returned result.
func (s *scheduleService) RunOnce(ctx context.Context) *dto.DirectoryResult {
	result, err := s.uploader.UploadDirectory(ctx, s.req)
	if err != nil {
		s.logger.Error("Scheduled podcast upload failed", logger.ErrorField(err), logger.StringField("directory", s.req.Directory))
		return &dto.DirectoryResult{
			Success:       false,
			DirectoryPath: s.req.Directory,
			Error:         err.Error(),
		}
	}

	if result.Success {
		s.logger.Info("Scheduled podcast upload finished", logger.StringField("file", result.UploadedFile.Filename))
	} else {
		s.logger.Warn("Scheduled podcast upload did not succeed", logger.StringField("error", result.Error))
	}
	return result
}

// Next returns the next activation time after from.
func (s *scheduleService) Next(from time.Time) time.Time {
	return s.schedule.Next(from)
}
