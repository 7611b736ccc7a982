package bot

// Telegram rejects messages over 4096 characters; the reserve leaves
// room for headers attached by callers.
const (
	maxMessageLen = 4096
	chunkReserve  = 200
)

// splitLyrics cuts lyrics into sendable chunks. Splitting is by rune
// count so a multi-byte character never straddles two messages.
func splitLyrics(text string) []string {
	limit := maxMessageLen - chunkReserve
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}
	var parts []string
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
