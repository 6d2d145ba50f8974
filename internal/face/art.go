package face

import "strings"

// ScreenClear wipes the terminal and homes the cursor.
const ScreenClear = "\x1b[2J\x1b[H"

const (
	leftMargin = "      "
	eyeGap     = "   "
)

var eyeOpen = []string{
	`   _____       _____   `,
	`  /     \_____/     \  `,
	` /                   \ `,
	`|   O           O     |`,
	` \                   / `,
	`  \_____     _____/   `,
	`        \___/         `,
}

var eyeHalf = []string{
	`   _____       _____   `,
	`  /     \_____/     \  `,
	` /                   \ `,
	`|   -           -     |`,
	` \                   / `,
	`  \_____     _____/   `,
	`        \___/         `,
}

var eyeClosed = []string{
	`   _____       _____   `,
	`  /     \_____/     \  `,
	` /                   \ `,
	`|   -------------     |`,
	` \                   / `,
	`  \_____     _____/   `,
	`        \___/         `,
}

// Render maps an openness level to the full face block, two eye blocks
// side by side. Any float is accepted; out-of-range values land in the
// nearest tier, and the boundary values 0.66 and 0.33 resolve to the
// more open tier.
func Render(openness float64) string {
	var art []string
	switch {
	case openness >= 0.66:
		art = eyeOpen
	case openness >= 0.33:
		art = eyeHalf
	default:
		art = eyeClosed
	}

	var b strings.Builder
	for i, line := range art {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(leftMargin)
		b.WriteString(line)
		b.WriteString(eyeGap)
		b.WriteString(line)
	}
	return b.String()
}
