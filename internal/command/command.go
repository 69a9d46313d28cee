// Package command defines the executable database commands shared by the
// one-shot CLI and the REPL.
package command

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avolkov/primdb/internal/engine"
)

// ErrExit signals that the session should end. Only the exit command
// returns it.
var ErrExit = errors.New("exit requested")

// Result is the outcome of one executed command.
type Result struct {
	OK       bool
	Message  string
	Elapsed  time.Duration
	Canceled bool
}

// Command executes one database operation.
type Command interface {
	Execute(db *engine.Database) (Result, error)
}

// Confirmable commands ask the user before running. An empty prompt means no
// confirmation is needed for this particular invocation.
type Confirmable interface {
	ConfirmPrompt() string
}

// slowThreshold mirrors the point at which execution time is worth surfacing.
const slowThreshold = 10 * time.Millisecond

// Apply runs c against db and stamps the result with elapsed wall time.
func Apply(db *engine.Database, c Command) (Result, error) {
	start := time.Now()
	res, err := c.Execute(db)
	res.Elapsed = time.Since(start)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", res.Elapsed).Msg("command failed")
		return res, err
	}
	if res.Elapsed > slowThreshold {
		log.Debug().Dur("elapsed", res.Elapsed).Msg("slow command")
	}
	return res, nil
}

// Runner executes commands with an optional confirmation hook for
// destructive operations. A nil Confirm runs everything unprompted.
type Runner struct {
	DB      *engine.Database
	Confirm func(prompt string) bool
}

// Exec confirms c if required, then applies it.
func (r *Runner) Exec(c Command) (Result, error) {
	if cf, ok := c.(Confirmable); ok && r.Confirm != nil {
		if prompt := cf.ConfirmPrompt(); prompt != "" && !r.Confirm(prompt) {
			return Result{Canceled: true, Message: "aborted"}, nil
		}
	}
	return Apply(r.DB, c)
}
