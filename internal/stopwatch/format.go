package stopwatch

import (
	"fmt"
	"time"
)

const centisecond = 10 * time.Millisecond

// FormatDuration renders d as minutes, seconds and hundredths, e.g.
// "02:05.40". The minutes field is zero-padded to two digits and grows
// past 99 unbounded. Hundredths are truncated, never rounded: 59.996s
// renders as "00:59.99".
func FormatDuration(d time.Duration) string {
	cs := d / centisecond
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
