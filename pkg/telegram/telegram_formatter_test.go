package telegram

import (
	"testing"

	"stock-intel/internal/podcast/dto"

	"github.com/stretchr/testify/assert"
)

func TestFormatPodcastUploadForTelegram_Success(t *testing.T) {
	msg := FormatPodcastUploadForTelegram(&dto.DirectoryResult{
		Success:       true,
		DirectoryPath: "output/audios/vcb",
		StatusCode:    201,
		UploadedFile: &dto.UploadedFile{
			Filename: "VCB_report.mp3",
			Title:    "Podcast: VCB_report",
			Tags:     []string{"VCB", "session_1"},
		},
	})

	assert.Contains(t, msg, "Podcast uploaded")
	assert.Contains(t, msg, `VCB\_report.mp3`)
	assert.Contains(t, msg, `VCB, session\_1`)
	assert.Contains(t, msg, "201")
}

func TestFormatPodcastUploadForTelegram_Failure(t *testing.T) {
	msg := FormatPodcastUploadForTelegram(&dto.DirectoryResult{
		Success:       false,
		DirectoryPath: "output/audios/empty",
		Error:         "no audio files found",
	})

	assert.Contains(t, msg, "Podcast upload failed")
	assert.Contains(t, msg, "no audio files found")
	assert.NotContains(t, msg, "Status")
}
