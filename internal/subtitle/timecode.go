package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatSRTTime renders seconds as HH:MM:SS,mmm rounded to the nearest
// millisecond. Hours are not wrapped at 24.
func FormatSRTTime(seconds float64) string {
	totalMillis := roundMillis(seconds)
	hours := totalMillis / 3_600_000
	minutes := (totalMillis / 60_000) % 60
	secs := (totalMillis / 1000) % 60
	millis := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// ParseSRTTime decodes HH:MM:SS,mmm into seconds. HH:MM:SS without the
// millisecond part is accepted as well.
func ParseSRTTime(value string) (float64, error) {
	parts := strings.Split(strings.ReplaceAll(value, ",", ":"), ":")
	switch len(parts) {
	case 4:
	case 3:
		parts = append(parts, "0")
	default:
		return 0, &FormatError{
			Input:  value,
			Reason: fmt.Sprintf("expected 4 components, got %d", len(parts)),
		}
	}

	nums, err := parseComponents(value, parts)
	if err != nil {
		return 0, err
	}
	whole := nums[0]*3600 + nums[1]*60 + nums[2]
	return float64(whole) + float64(nums[3])/1000, nil
}

// FormatHMS renders whole seconds as H:MM:SS with no padding on hours.
// Fractions are floored and negative input is clamped to zero.
func FormatHMS(seconds float64) string {
	total := int64(0)
	if seconds > 0 && !math.IsNaN(seconds) && !math.IsInf(seconds, 0) {
		total = int64(math.Floor(seconds))
	}
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ParseHMS decodes H:MM:SS, MM:SS or SS into whole seconds.
func ParseHMS(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, &FormatError{
			Input:  value,
			Reason: fmt.Sprintf("expected 1 to 3 components, got %d", len(parts)),
		}
	}
	nums, err := parseComponents(value, parts)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, n := range nums {
		total = total*60 + n
	}
	return total, nil
}

// ParseFlexibleTime accepts SRT time, H:MM:SS style time, or plain decimal
// seconds. Used for user-entered values.
func ParseFlexibleTime(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if strings.Contains(value, ",") {
		return ParseSRTTime(value)
	}
	if !strings.Contains(value, ":") {
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil || seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return 0, &FormatError{Input: value, Reason: "not a non-negative number of seconds"}
		}
		return seconds, nil
	}
	whole, err := ParseHMS(value)
	if err != nil {
		return 0, err
	}
	return float64(whole), nil
}

// maxComponent bounds each field of a time so the total in seconds cannot
// overflow int.
const maxComponent = 99_999

func parseComponents(input string, parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &FormatError{
				Input:  input,
				Reason: fmt.Sprintf("component %q is not a number", part),
			}
		}
		if n < 0 {
			return nil, &FormatError{
				Input:  input,
				Reason: fmt.Sprintf("component %q is negative", part),
			}
		}
		if n > maxComponent {
			return nil, &FormatError{
				Input:  input,
				Reason: fmt.Sprintf("component %q is out of range", part),
			}
		}
		nums[i] = n
	}
	return nums, nil
}

func roundMillis(seconds float64) int64 {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0
	}
	return int64(math.Round(seconds * 1000))
}
