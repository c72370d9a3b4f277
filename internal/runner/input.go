package runner

import (
	"bufio"
	"context"
	"io"
	"strings"
)

var keys = map[string]Action{
	"n": ActionNext,
	"":  ActionNext,
	"s": ActionSkip,
	"r": ActionSkipRest,
	"p": ActionPrevious,
	"f": ActionFinish,
	"q": ActionQuit,
}

// ParseAction maps one line of terminal input to an action. An empty line
// (just Enter) means next.
func ParseAction(line string) (Action, bool) {
	a, ok := keys[strings.ToLower(strings.TrimSpace(line))]
	return a, ok
}

// ReadActions reads one action per line from r until EOF, a read error or ctx
// is done, then closes the returned channel. Unknown lines are skipped. A
// reader blocked in Read is only released by its next line or EOF.
func ReadActions(ctx context.Context, r io.Reader) <-chan Action {
	out := make(chan Action)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			a, ok := ParseAction(scanner.Text())
			if !ok {
				continue
			}
			select {
			case out <- a:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
