package cv

import (
	"strings"

	"github.com/khoahotran/personal-site/pkg/textutil"
)

// Chunk groups a section's lines into blocks. Consecutive non-blank lines,
// bullet markers stripped, are joined with spaces; a blank line ends a block.
func Chunk(lines []string) []string {
	var (
		blocks []string
		buf    []string
	)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		if joined := strings.Join(buf, " "); joined != "" {
			blocks = append(blocks, joined)
		}
		buf = buf[:0]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		buf = append(buf, textutil.StripBullet(trimmed))
	}
	flush()
	return blocks
}
