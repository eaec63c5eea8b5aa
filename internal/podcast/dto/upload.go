package dto

import "encoding/json"

// UploadRequest describes a single audio file upload.
type UploadRequest struct {
	ServerURL   string
	Endpoint    string
	FilePath    string
	Title       string
	SecretKey   string
	Description string
	UploadedBy  string
	Status      string
	Tags        []string
}

// UploadResult is the outcome of a single file upload. Failures are reported here, not as errors.
type UploadResult struct {
	Success        bool            `json:"success"`
	StatusCode     int             `json:"status_code,omitempty"`
	UploadedFile   string          `json:"uploaded_file,omitempty"`
	FailedFile     string          `json:"failed_file,omitempty"`
	Title          string          `json:"title,omitempty"`
	ServerResponse json.RawMessage `json:"server_response,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// DirectoryUploadRequest selects a directory and optionally overrides the configured target.
type DirectoryUploadRequest struct {
	Directory string
	SecretKey string
	ServerURL string
}

// UploadedFile describes the file picked from a directory.
type UploadedFile struct {
	Filename       string          `json:"filename"`
	Filepath       string          `json:"filepath"`
	Title          string          `json:"title"`
	Tags           []string        `json:"tags"`
	ServerResponse json.RawMessage `json:"server_response,omitempty"`
}

// DirectoryResult is the outcome of a directory upload.
type DirectoryResult struct {
	Success       bool          `json:"success"`
	DirectoryPath string        `json:"directory_path"`
	UploadedFile  *UploadedFile `json:"uploaded_file"`
	StatusCode    int           `json:"status_code,omitempty"`
	Error         string        `json:"error,omitempty"`
}

// PodcastMetadata is derived from an audio file name.
type PodcastMetadata struct {
	Title       string
	Description string
	Tags        []string
}
