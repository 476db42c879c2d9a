package event

// Signal is one entry of the controller inbox. Exactly one of Message and
// Interaction is set, messages and callbacks then share one arrival order.
type Signal struct {
	Message     Bundle
	Interaction *Interaction
}

func MessageSignal(b Bundle) Signal {
	return Signal{Message: b}
}

func InteractionSignal(i Interaction) Signal {
	return Signal{Interaction: &i}
}
