package peer

// Mailbox hands the latest reading from the receive side to the control
// loop.  It holds at most one reading; a newer one replaces an unread older
// one.
type Mailbox struct {
	ch chan Env
}

func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan Env, 1)}
}

// Receive decodes a raw packet and posts it.  Malformed packets are dropped
// and leave the mailbox as it was.
func (m *Mailbox) Receive(data []byte) bool {
	e, ok := Decode(data)
	if !ok {
		return false
	}
	m.Post(e)
	return true
}

// Post stores e, replacing any reading not yet taken.  It never blocks.
func (m *Mailbox) Post(e Env) {
	for {
		select {
		case m.ch <- e:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

// Take returns the pending reading, if there is one, and empties the box
func (m *Mailbox) Take() (Env, bool) {
	select {
	case e := <-m.ch:
		return e, true
	default:
		return Env{}, false
	}
}
