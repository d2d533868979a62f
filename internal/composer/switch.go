package composer

// switchAsciiMode applies a switch style against the active composition
// and sets ascii mode to the target value.
//
// StyleInlineAscii entering ascii mode subscribes to composition
// updates: when composing later ends, ascii mode auto-reverts to false.
// The subscription is single-slot and fire-once; starting a new inline
// switch disconnects any prior registration.
func (c *Composer) switchAsciiMode(asciiMode bool, style SwitchStyle) {
	c.log.Debug().
		Bool("ascii_mode", asciiMode).
		Stringer("style", style).
		Msg("switching ascii mode")

	if c.ctx.IsComposing() {
		switch style {
		case StyleInlineAscii:
			c.cancelSubscription()
			if asciiMode {
				c.cancelUpdate = c.ctx.OnUpdate(c.onContextUpdate)
			}
		case StyleCommitText:
			c.ctx.ConfirmCurrentSelection()
		case StyleCommitCode:
			c.ctx.ClearNonConfirmedComposition()
			c.ctx.Commit()
		case StyleClear:
			c.ctx.Clear()
		case StyleNoop:
		}
	}
	// Refresh the non-confirmed composition with the new mode.
	c.ctx.SetOption(OptionAsciiMode, asciiMode)
}

// onContextUpdate quits the inline ascii mode once composing ends.
// Fires at most once; it cancels its own subscription.
func (c *Composer) onContextUpdate() {
	if c.ctx.IsComposing() {
		return
	}
	c.cancelSubscription()
	c.ctx.SetOption(OptionAsciiMode, false)
}

func (c *Composer) cancelSubscription() {
	if c.cancelUpdate != nil {
		c.cancelUpdate()
		c.cancelUpdate = nil
	}
}
