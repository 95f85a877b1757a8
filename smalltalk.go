package main

// Static-list intents: no slots, no ledger access, no domain changes.

func (e *Engine) ruleHelp(t *turn) (Reply, bool) {
	if !e.phrases.set("help").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("help"), Intent: "help"}, true
}

func (e *Engine) ruleOutOfScope(t *turn) (Reply, bool) {
	if !e.phrases.set("out_of_scope").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("out_of_scope"), Intent: "out_of_scope"}, true
}

func (e *Engine) ruleGreet(t *turn) (Reply, bool) {
	if !e.phrases.set("greet").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("greet"), Intent: "greet"}, true
}

func (e *Engine) ruleThanks(t *turn) (Reply, bool) {
	if !e.phrases.set("thanks").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("thanks"), Intent: "thanks"}, true
}

func (e *Engine) ruleGoodbye(t *turn) (Reply, bool) {
	if !e.phrases.set("goodbye").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("goodbye"), Intent: "goodbye"}, true
}

func (e *Engine) ruleFeedback(t *turn) (Reply, bool) {
	if !e.phrases.set("feedback").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("feedback"), Intent: "feedback"}, true
}

func (e *Engine) ruleAcknowledge(t *turn) (Reply, bool) {
	if !e.phrases.set("acknowledge").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("acknowledge"), Intent: "acknowledge"}, true
}

func (e *Engine) ruleFallback(t *turn) (Reply, bool) {
	return Reply{Text: e.pick("fallback"), Intent: "fallback"}, true
}
