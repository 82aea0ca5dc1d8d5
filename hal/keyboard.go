package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// push queues r, dropping it if the frame loop has fallen 64 keys behind.
func (k *hostKeyboard) push(r rune) bool {
	select {
	case k.ch <- KeyEvent{Rune: r}:
		return true
	default:
		return false
	}
}
