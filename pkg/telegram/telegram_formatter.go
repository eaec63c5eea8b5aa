package telegram

import (
	"fmt"
	"strings"

	"stock-intel/internal/podcast/dto"
)

// FormatPodcastUploadForTelegram renders a directory upload result as a Markdown message.
func FormatPodcastUploadForTelegram(result *dto.DirectoryResult) string {
	var sb strings.Builder

	if result.Success && result.UploadedFile != nil {
		sb.WriteString("🎙️ *Podcast uploaded* ✅\n\n")
		sb.WriteString(fmt.Sprintf("📁 *Directory:* %s\n", escapeMarkdown(result.DirectoryPath)))
		sb.WriteString(fmt.Sprintf("🎧 *File:* %s\n", escapeMarkdown(result.UploadedFile.Filename)))
		sb.WriteString(fmt.Sprintf("📝 *Title:* %s\n", escapeMarkdown(result.UploadedFile.Title)))
		if len(result.UploadedFile.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("🏷️ *Tags:* %s\n", escapeMarkdown(strings.Join(result.UploadedFile.Tags, ", "))))
		}
		sb.WriteString(fmt.Sprintf("🌐 *Status:* %d\n", result.StatusCode))
		return sb.String()
	}

	sb.WriteString("🎙️ *Podcast upload failed* ❌\n\n")
	sb.WriteString(fmt.Sprintf("📁 *Directory:* %s\n", escapeMarkdown(result.DirectoryPath)))
	if result.StatusCode != 0 {
		sb.WriteString(fmt.Sprintf("🌐 *Status:* %d\n", result.StatusCode))
	}
	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("💬 *Error:* %s\n", escapeMarkdown(result.Error)))
	}
	return sb.String()
}

// escapeMarkdown escapes the characters that legacy Telegram Markdown treats as markup.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")
	return replacer.Replace(s)
}
