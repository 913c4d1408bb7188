package services

import "context"

// Confirmer is the synchronous confirmation capability the model requires
// from its caller before a destructive operation executes. It replaces
// direct UI dialogs so the services stay free of presentation concerns.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// Notifier surfaces a one-line message to the operator.
type Notifier interface {
	Notify(ctx context.Context, message string)
}
