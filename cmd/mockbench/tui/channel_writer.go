package tui

// ChannelWriter implements io.Writer and sends the written data to a channel.
// Writes are dropped while the channel is full so logging never blocks the
// caller.
type ChannelWriter struct {
	Ch chan<- string
}

// Write sends the byte slice as a string to the channel.
func (w *ChannelWriter) Write(p []byte) (n int, err error) {
	select {
	case w.Ch <- string(p):
	default:
	}
	return len(p), nil
}
