package actions

// Mode identifies how a creator builds its actions.
type Mode string

const (
	// ModeEmpty creators produce {type} only.
	ModeEmpty Mode = "empty"

	// ModePayload creators produce {type, payload} with the call argument as payload.
	ModePayload Mode = "payload"

	// ModeFSA creators compute payload and meta from mapper functions.
	ModeFSA Mode = "fsa"

	// ModeAsync creators are members of a request/success/failure triad.
	ModeAsync Mode = "async"
)
