package utils

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// CopyToClipboard writes content to the system clipboard
func CopyToClipboard(content string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// FormatLayout renders panel sizes as "id=size" pairs, one per panel in order
func FormatLayout(ids []string, sizes []float64) string {
	parts := make([]string, 0, len(ids))
	for i, id := range ids {
		if i >= len(sizes) {
			break
		}
		parts = append(parts, fmt.Sprintf("%s=%s", id, formatPercent(sizes[i])))
	}
	return strings.Join(parts, " ")
}

func formatPercent(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "%"
}
