// Package report writes the human-readable route summary.
package report

import (
	"fmt"
	"os"
	"strings"
)

// Summary is everything the route report needs: the minimum base range,
// and the star names visited in order.
type Summary struct {
	RequiredRange float32
	Start         string
	Bridges       []string
	Goal          string
}

// Render formats the summary as the route file's text.
func Render(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Minimum jump range required: %.2f\n", s.RequiredRange)
	fmt.Fprintf(&b, "Total neutron jumps: %d\n", len(s.Bridges))
	b.WriteString(s.Start)
	b.WriteByte('\n')
	for _, name := range s.Bridges {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	b.WriteString(s.Goal)
	return b.String()
}

// Write renders the summary to a text file at path.
func Write(path string, s Summary) error {
	if err := os.WriteFile(path, []byte(Render(s)), 0644); err != nil {
		return fmt.Errorf("write route summary: %w", err)
	}
	return nil
}
