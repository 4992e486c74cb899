package cmdrouter

import "context"

type ctxKey string

const (
	commandKey      ctxKey = "command"
	conversationKey ctxKey = "conversation"
)

func GetCommandFromCtx(ctx context.Context) string {
	command, _ := ctx.Value(commandKey).(string)
	return command
}

type conversation struct {
	pending FollowUpFunc
}

// Ask makes the router hand the next input line to fn instead of dispatching
// it as a command. It is a no-op outside of Serve.
func Ask(ctx context.Context, fn FollowUpFunc) {
	if c, ok := ctx.Value(conversationKey).(*conversation); ok {
		c.pending = fn
	}
}
