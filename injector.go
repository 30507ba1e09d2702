package touchdeck

// Injector is the socket a thing's control loop uses to put msgs on the bus
type Injector struct {
	socket
}

func NewInjector(name string, bus *Bus) *Injector {
	i := &Injector{socket{name, "", 0, bus}}
	bus.plugin(i)
	return i
}

// Inject the msg into the bus as if it arrived on the injector socket
func (i *Injector) Inject(msg *Msg) {
	msg.bus, msg.src = i.bus, i
	i.bus.receive(msg)
}
