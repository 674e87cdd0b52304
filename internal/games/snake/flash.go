package snake

import "time"

// Flash is the transient "mouth open" flag shown after eating. It belongs
// to the renderer. Every trigger is tagged with the engine session, so a
// deferred clear left over from an earlier game cannot touch a newer one.
type Flash struct {
	session uint64
	until   time.Time
	on      bool
}

// Trigger opens the mouth for session until the given time.
func (f *Flash) Trigger(session uint64, until time.Time) {
	f.session = session
	f.until = until
	f.on = true
}

// Clear closes the mouth if the flag still belongs to session and its
// deadline has passed. It reports whether the flag was cleared.
func (f *Flash) Clear(session uint64, now time.Time) bool {
	if !f.on || f.session != session || now.Before(f.until) {
		return false
	}
	f.on = false
	return true
}

// Active reports whether the mouth is open for session at now.
func (f *Flash) Active(session uint64, now time.Time) bool {
	return f.on && f.session == session && now.Before(f.until)
}
