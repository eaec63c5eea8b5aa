package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"stock-intel/internal/podcast/dto"
	"stock-intel/pkg/utils"
)

// BuildPodcastMetadata derives title, description and tags from a file name without extension.
//
// Tags, in order: the upper-cased prefix before the first underscore when it is 2 to 5 characters long,
// session_<n>, the date as YYYYMMDD, then MARKET+ANALYSIS, STOCK+ANALYSIS or GENERAL depending on the name.
func BuildPodcastMetadata(stem string, now time.Time) dto.PodcastMetadata {
	var tags []string

	if prefix, _, found := strings.Cut(stem, "_"); found {
		symbol := strings.ToUpper(prefix)
		if n := utf8.RuneCountInString(symbol); n >= 2 && n <= 5 {
			tags = append(tags, symbol)
		}
	}

	tags = append(tags,
		fmt.Sprintf("session_%d", utils.TradingSession(now)),
		utils.DateStamp(now),
	)

	stamp := now.Format("02/01/2006 15:04")
	lower := strings.ToLower(stem)

	var description string
	switch {
	case strings.Contains(lower, "market"):
		tags = append(tags, "MARKET", "ANALYSIS")
		description = "Market analysis - " + stamp
	case strings.Contains(lower, "analysis"):
		tags = append(tags, "STOCK", "ANALYSIS")
		description = "Stock analysis - " + stamp
	default:
		tags = append(tags, "GENERAL")
		description = "Podcast generated by Stock AI Tool - " + stamp
	}

	return dto.PodcastMetadata{
		Title:       "Podcast: " + stem,
		Description: description,
		Tags:        tags,
	}
}
