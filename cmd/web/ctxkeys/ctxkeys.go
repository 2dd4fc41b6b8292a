package ctxkeys

type Key int

const (
	WorkspaceID Key = iota // uuid.UUID of the session's result workspace
)
