package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stock-intel/internal/podcast/config"
	"stock-intel/internal/podcast/dto"
	"stock-intel/pkg/common"
	"stock-intel/pkg/logger"
	"stock-intel/pkg/telegram"

	"github.com/go-resty/resty/v2"
)

var (
	ErrFileNotFound      = errors.New("audio file not found")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNotDirectory      = errors.New("path is not a directory")
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".aac":  true,
	".ogg":  true,
	".flac": true,
}

// UploaderService uploads podcast audio to the remote podcast server.
type UploaderService interface {
	UploadFile(ctx context.Context, req dto.UploadRequest) (*dto.UploadResult, error)
	UploadDirectory(ctx context.Context, req dto.DirectoryUploadRequest) (*dto.DirectoryResult, error)
}

// NewUploaderService creates a new UploaderService. notifier may be nil.
func NewUploaderService(cfg config.Podcast, client *resty.Client, notifier telegram.Notifier, log *logger.Logger) UploaderService {
	return &uploaderService{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

// NewRestyClient builds the HTTP client used for uploads.
func NewRestyClient(timeout time.Duration) *resty.Client {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

type uploaderService struct {
	cfg      config.Podcast
	client   *resty.Client
	notifier telegram.Notifier
	logger   *logger.Logger
	now      func() time.Time
}

// UploadFile posts one audio file as multipart form data.
// Only a missing local file is returned as an error; HTTP and transport failures are reported in the result.
func (s *uploaderService) UploadFile(ctx context.Context, req dto.UploadRequest) (*dto.UploadResult, error) {
	filename := filepath.Base(req.FilePath)

	info, err := os.Stat(req.FilePath)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, req.FilePath)
	}

	audio, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", req.FilePath, err)
	}
	defer audio.Close()

	endpoint := req.Endpoint
	if endpoint == "" {
		endpoint = common.PodcastUploadPath
	}
	target := strings.TrimRight(req.ServerURL, "/") + endpoint

	form := url.Values{}
	form.Set("title", req.Title)
	form.Set("secretKey", req.SecretKey)
	if req.Description != "" {
		form.Set("description", req.Description)
	}
	if req.UploadedBy != "" {
		form.Set("uploadedBy", req.UploadedBy)
	}
	if req.Status != "" {
		form.Set("status", req.Status)
	}
	for _, tag := range req.Tags {
		form.Add("tags", tag)
	}

	s.logger.Info("Uploading podcast file", logger.StringField("file", filename), logger.StringField("url", target))

	resp, err := s.client.R().
		SetContext(ctx).
		SetMultipartField("audio", filename, audioContentType(filename), audio).
		SetFormDataFromValues(form).
		Post(target)
	if err != nil {
		s.logger.Error("Podcast upload request failed", logger.ErrorField(err), logger.StringField("file", filename))
		return &dto.UploadResult{
			Success:    false,
			FailedFile: filename,
			Error:      err.Error(),
		}, nil
	}

	body := parseServerResponse(resp.Body())
	status := resp.StatusCode()

	if status == http.StatusOK || status == http.StatusCreated {
		s.logger.Info("Podcast upload succeeded", logger.StringField("file", filename), logger.IntField("status_code", status))
		return &dto.UploadResult{
			Success:        true,
			StatusCode:     status,
			UploadedFile:   filename,
			Title:          req.Title,
			ServerResponse: body,
		}, nil
	}

	s.logger.Warn("Podcast upload rejected", logger.StringField("file", filename), logger.IntField("status_code", status))
	return &dto.UploadResult{
		Success:        false,
		StatusCode:     status,
		FailedFile:     filename,
		ServerResponse: body,
		Error:          fmt.Sprintf("upload failed with status %d: %s", status, string(body)),
	}, nil
}

// UploadDirectory uploads the single audio file found directly inside req.Directory.
// A missing directory or a non-directory path is returned as an error; every other failure is a result.
func (s *uploaderService) UploadDirectory(ctx context.Context, req dto.DirectoryUploadRequest) (*dto.DirectoryResult, error) {
	dir := req.Directory

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	audioFiles, err := listAudioFiles(dir)
	if err != nil {
		return nil, err
	}

	if len(audioFiles) == 0 {
		result := &dto.DirectoryResult{
			Success:       false,
			DirectoryPath: dir,
			Error:         fmt.Sprintf("no audio files found in directory %q", dir),
		}
		s.notify(result)
		return result, nil
	}

	if len(audioFiles) > 1 {
		s.logger.Warn("Multiple audio files found, uploading only the first",
			logger.IntField("count", len(audioFiles)),
			logger.StringField("file", filepath.Base(audioFiles[0])),
		)
	}

	result := s.uploadOne(ctx, req, audioFiles[0])
	s.notify(result)
	return result, nil
}

func (s *uploaderService) uploadOne(ctx context.Context, req dto.DirectoryUploadRequest, path string) (result *dto.DirectoryResult) {
	filename := filepath.Base(path)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Unexpected panic during podcast upload", logger.Field("panic", r), logger.StringField("file", filename))
			result = &dto.DirectoryResult{
				Success:       false,
				DirectoryPath: req.Directory,
				Error:         fmt.Sprintf("unexpected error uploading %s: %v", filename, r),
			}
		}
	}()

	serverURL := req.ServerURL
	if serverURL == "" {
		serverURL = s.cfg.ServerURL
	}
	secretKey := req.SecretKey
	if secretKey == "" {
		secretKey = s.cfg.SecretKey
	}

	meta := BuildPodcastMetadata(strings.TrimSuffix(filename, filepath.Ext(filename)), s.now())

	s.logger.Info("Uploading podcast from directory", logger.StringField("file", filename), logger.StringField("directory", req.Directory))

	upload, err := s.UploadFile(ctx, dto.UploadRequest{
		ServerURL:   serverURL,
		Endpoint:    s.cfg.Endpoint,
		FilePath:    path,
		Title:       meta.Title,
		SecretKey:   secretKey,
		Description: meta.Description,
		UploadedBy:  common.PodcastUploadedBy,
		Status:      common.PodcastStatus,
		Tags:        meta.Tags,
	})
	if err != nil {
		return &dto.DirectoryResult{
			Success:       false,
			DirectoryPath: req.Directory,
			Error:         fmt.Sprintf("error uploading %s: %v", filename, err),
		}
	}

	if !upload.Success {
		return &dto.DirectoryResult{
			Success:       false,
			DirectoryPath: req.Directory,
			StatusCode:    upload.StatusCode,
			Error:         upload.Error,
		}
	}

	return &dto.DirectoryResult{
		Success:       true,
		DirectoryPath: req.Directory,
		StatusCode:    upload.StatusCode,
		UploadedFile: &dto.UploadedFile{
			Filename:       filename,
			Filepath:       path,
			Title:          meta.Title,
			Tags:           meta.Tags,
			ServerResponse: upload.ServerResponse,
		},
	}
}

func (s *uploaderService) notify(result *dto.DirectoryResult) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendMessage(telegram.FormatPodcastUploadForTelegram(result)); err != nil {
		s.logger.Warn("Failed to send Telegram notification", logger.ErrorField(err))
	}
}

// listAudioFiles returns the audio files directly inside dir, sorted by name.
func listAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func audioContentType(filename string) string {
	if strings.ToLower(filepath.Ext(filename)) == ".mp3" {
		return "audio/mpeg"
	}
	return "audio/wav"
}

func parseServerResponse(body []byte) json.RawMessage {
	if len(body) > 0 && json.Valid(body) {
		return json.RawMessage(body)
	}
	wrapped, _ := json.Marshal(map[string]string{"message": string(body)})
	return wrapped
}
