package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal integer
// string, keeping a leading minus sign.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var sb strings.Builder
	sb.Grow(len(sign) + len(s) + len(s)/3)
	sb.WriteString(sign)
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	sb.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// TruncateDigits shortens a long decimal string to its first and last
// keep digits, e.g. "123...789 (40 digits)". Strings of at most 2*keep
// digits are returned unchanged.
func TruncateDigits(s string, keep int) string {
	digits := strings.TrimPrefix(s, "-")
	if keep <= 0 || len(digits) <= 2*keep {
		return s
	}
	sign := s[:len(s)-len(digits)]
	return sign + digits[:keep] + "..." + digits[len(digits)-keep:] +
		" (" + FormatNumberString(itoa(len(digits))) + " digits)"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// FormatBytes renders a byte count with a binary unit, e.g. "1.50 MiB".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
