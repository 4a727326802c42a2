package view

import (
	"fmt"
	"strings"
	"time"
)

const (
	// CollapsedBranchCount is number of branches shown for a collapsed repository
	CollapsedBranchCount = 3

	NoBranchMessage = "No branch information available"
	NoCommitMessage = "No commit information available"
	RefreshLabel    = "Refresh now"

	commitMessageLimit = 60
)

// RelativeTime formats elapsed time in compact form such as "5m ago" or "2mo ago"
func RelativeTime(now, t time.Time) string {
	sec := int64(now.Sub(t) / time.Second)

	switch {
	case sec < 60:
		return "just now"
	case sec < 3600:
		return fmt.Sprintf("%dm ago", sec/60)
	case sec < 86400:
		return fmt.Sprintf("%dh ago", sec/3600)
	case sec < 2592000:
		return fmt.Sprintf("%dd ago", sec/86400)
	case sec < 31536000:
		return fmt.Sprintf("%dmo ago", sec/2592000)
	default:
		return fmt.Sprintf("%dy ago", sec/31536000)
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// SinceUpdate formats elapsed time since the cache was written, e.g. "1 minute ago" or "3 days ago"
func SinceUpdate(now, writtenAt time.Time) string {
	sec := int64(now.Sub(writtenAt) / time.Second)

	switch {
	case sec < 60:
		return "just now"
	case sec < 3600:
		return plural(sec/60, "minute")
	case sec < 86400:
		return plural(sec/3600, "hour")
	default:
		return plural(sec/86400, "day")
	}
}

// Freshness returns the status text of the freshness indicator
func Freshness(now, writtenAt time.Time) string {
	if now.Sub(writtenAt) < time.Minute {
		return "Just updated"
	}
	return "Last updated " + SinceUpdate(now, writtenAt)
}

// CommitHeadline returns first line of the message, truncated to 60 characters
func CommitHeadline(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	line = strings.TrimRight(line, "\r")

	runes := []rune(line)
	if len(runes) > commitMessageLimit {
		return string(runes[:commitMessageLimit-3]) + "..."
	}
	return line
}

// MoreBranches returns the "+N more branches" label, or empty string when all are shown
func MoreBranches(total int) string {
	if total <= CollapsedBranchCount {
		return ""
	}
	return fmt.Sprintf("+%d more branches", total-CollapsedBranchCount)
}
