package utils

import "io"

// drainLimit caps how much of an unread body is discarded so the connection can be reused.
const drainLimit = 256 << 10

// DrainAndClose discards what is left of an HTTP response body, then closes it.
func DrainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, drainLimit))
	_ = body.Close()
}
