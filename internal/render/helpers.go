package render

import (
	"fmt"
	"time"
)

const (
	// NAValue marks values the backend does not carry.
	NAValue = "n/a"
	// UnknownValue marks values that could not be determined.
	UnknownValue = "?"
)

// ToAge converts a timestamp to a human-readable age.
func ToAge(t *time.Time) string {
	if t == nil || t.IsZero() {
		return UnknownValue
	}
	return HumanDuration(time.Since(*t))
}

// HumanDuration renders a duration as its most significant unit, e.g.
// "5d", "3h", "2m".
func HumanDuration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}

	days := int(d.Hours() / 24)
	switch {
	case days > 365:
		return fmt.Sprintf("%dy", days/365)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case int(d.Hours()) > 0:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case int(d.Minutes()) > 0:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}

// NA returns NAValue if the string is empty.
func NA(s string) string {
	if s == "" {
		return NAValue
	}
	return s
}

// StrPtrToStr converts *string to string.
func StrPtrToStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// HumanSize renders a byte count with a binary unit suffix.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ci", float64(n)/float64(div), "KMGTPE"[exp])
}
