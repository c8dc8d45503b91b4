package browser

// republishLocked recomputes every command flag together and returns a
// closure that delivers the new value to registered handlers. Callers hold
// b.mu and invoke the closure after releasing it, so handlers can call back
// into the browser.
func (b *Browser) republishLocked() func() {
	cmds := computeCommands(&b.state, b.tree.Selected())
	b.commands = cmds

	b.handlersMu.Lock()
	handlers := make([]CommandsHandler, len(b.commandsHandlers))
	copy(handlers, b.commandsHandlers)
	b.handlersMu.Unlock()

	return func() {
		for _, h := range handlers {
			h(cmds)
		}
	}
}

// publishStatus delivers a session open/close transition to status handlers.
func (b *Browser) publishStatus(open bool) {
	b.handlersMu.Lock()
	handlers := make([]SessionStatusHandler, len(b.statusHandlers))
	copy(handlers, b.statusHandlers)
	b.handlersMu.Unlock()

	for _, h := range handlers {
		h(open)
	}
}

func (b *Browser) cloneObjectHandlers() []ObjectHandler {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	handlers := make([]ObjectHandler, len(b.objectHandlers))
	copy(handlers, b.objectHandlers)
	return handlers
}
