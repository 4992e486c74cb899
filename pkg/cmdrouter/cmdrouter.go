package cmdrouter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// MaxLineLength is the longest input line Serve dispatches.
const MaxLineLength = 64 * 1024

var (
	// ErrExit ends Serve without error when returned by a handler.
	ErrExit = errors.New("exit")
	// ErrLineTooLong is reported through OnError for lines over MaxLineLength.
	ErrLineTooLong = errors.New("input line is too long")
)

type HandlerFunc func(ctx context.Context, w io.Writer, args []string) error

type FollowUpFunc func(ctx context.Context, w io.Writer, answer string) error

type Middleware func(next HandlerFunc) HandlerFunc

type CmdRouter struct {
	routes      map[string]HandlerFunc
	middlewares []Middleware
	notFound    HandlerFunc
	onError     func(ctx context.Context, w io.Writer, err error)
}

func New() *CmdRouter {
	return &CmdRouter{
		routes: make(map[string]HandlerFunc),
		notFound: func(_ context.Context, w io.Writer, _ []string) error {
			_, err := fmt.Fprintln(w, "Unknown command")
			return err
		},
		onError: func(_ context.Context, w io.Writer, err error) {
			fmt.Fprintln(w, err)
		},
	}
}

// Handle registers handler for command. Commands are matched case-insensitively.
func (r *CmdRouter) Handle(command string, handler HandlerFunc) {
	r.routes[strings.ToUpper(command)] = handler
}

func (r *CmdRouter) Use(mw Middleware) {
	r.middlewares = append(r.middlewares, mw)
}

func (r *CmdRouter) NotFound(handler HandlerFunc) {
	r.notFound = handler
}

func (r *CmdRouter) OnError(fn func(ctx context.Context, w io.Writer, err error)) {
	r.onError = fn
}

func (r *CmdRouter) Commands() []string {
	commands := make([]string, 0, len(r.routes))
	for command := range r.routes {
		commands = append(commands, command)
	}

	slices.Sort(commands)
	return commands
}

func (r *CmdRouter) wrap(handler HandlerFunc) HandlerFunc {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i](handler)
	}

	return handler
}

// Dispatch runs the handler for a single input line.
func (r *CmdRouter) Dispatch(ctx context.Context, w io.Writer, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command := strings.ToUpper(fields[0])
	handler, exists := r.routes[command]
	if !exists {
		handler = r.notFound
	}

	ctx = context.WithValue(ctx, commandKey, command)
	return r.wrap(handler)(ctx, w, fields[1:])
}

// Serve reads commands line by line from in until EOF, ErrExit or ctx is done.
// Handler errors and oversized lines are reported through the OnError hook and
// do not stop Serve.
func (r *CmdRouter) Serve(ctx context.Context, in io.Reader, w io.Writer, prompt string) error {
	conv := &conversation{}
	ctx = context.WithValue(ctx, conversationKey, conv)

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if conv.pending == nil && prompt != "" {
			fmt.Fprint(w, prompt)
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && (!errors.Is(readErr, io.EOF) || line == "") {
			if errors.Is(readErr, io.EOF) {
				return nil
			}

			return readErr
		}
		line = strings.TrimRight(line, "\r\n")

		var err error
		switch followUp := conv.pending; {
		case len(line) > MaxLineLength:
			err = fmt.Errorf("%w: %d bytes", ErrLineTooLong, len(line))
		case followUp != nil:
			conv.pending = nil
			err = followUp(ctx, w, strings.TrimSpace(line))
		default:
			err = r.Dispatch(ctx, w, line)
		}

		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			r.onError(ctx, w, err)
		}
	}
}
