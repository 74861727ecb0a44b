// Package format holds small string helpers for HUD and status output.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Duration renders d compactly for status lines: "450ms", "3.2s", "1m05s", "2h04m"
func Duration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < 10*time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		m := int(d.Minutes())
		s := int(d.Seconds()) - m*60
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		h := int(d.Hours())
		m := int(d.Minutes()) - h*60
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

// Count abbreviates n for tight spaces: 950 -> "950", 1200 -> "1.2k",
// 3400000 -> "3.4M". One decimal below 10 units, none above
func Count(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	var s string
	switch {
	case n < 1000:
		s = strconv.FormatInt(n, 10)
	case n < 1000000:
		s = abbrev(n, 1000, "k")
	case n < 1000000000:
		s = abbrev(n, 1000000, "M")
	default:
		s = abbrev(n, 1000000000, "B")
	}

	if neg {
		return "-" + s
	}
	return s
}

func abbrev(n, unit int64, suffix string) string {
	whole := n / unit
	if whole >= 10 {
		return strconv.FormatInt(whole, 10) + suffix
	}
	tenth := (n % unit) * 10 / unit
	if tenth == 0 {
		return strconv.FormatInt(whole, 10) + suffix
	}
	return fmt.Sprintf("%d.%d%s", whole, tenth, suffix)
}

// Percent renders a [0,1] fraction as a whole percentage, clamped
func Percent(v float64) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return strconv.Itoa(int(v*100+0.5)) + "%"
}

// Commas groups digits of n by thousands: 1234567 -> "1,234,567"
func Commas(n int64) string {
	s := strconv.FormatInt(n, 10)
	start := 0
	if s[0] == '-' {
		start = 1
	}

	digits := len(s) - start
	if digits <= 3 {
		return s
	}

	out := make([]byte, 0, len(s)+(digits-1)/3)
	out = append(out, s[:start]...)
	lead := digits % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[start:start+lead]...)
	for i := start + lead; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
