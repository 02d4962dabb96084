package cli

// step reports the outcome of one demo action. Rejections are part of the
// demonstration, so they are printed and logged but never returned.
func (a *app) step(action string, err error, format string, args ...any) bool {
	if err != nil {
		a.log.Infow("step rejected", "action", action, "error", err)
		a.out.rejected(err)
		return false
	}
	a.log.Debugw("step ok", "action", action)
	a.out.ok(format, args...)
	return true
}

// toggle reports a mode-flag change.
func (a *app) toggle(action string, changed bool, done, already string) {
	a.log.Debugw("toggle", "action", action, "changed", changed)
	if changed {
		a.out.ok("%s", done)
		return
	}
	a.out.noop("%s", already)
}
