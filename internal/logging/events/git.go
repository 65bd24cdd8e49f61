package events

import (
	"strings"

	"github.com/atomicstack/git-popup-control/internal/logging"
)

type GitTracer struct{}

var Git = GitTracer{}

func (GitTracer) Command(args []string) {
	logging.Trace("git.command", map[string]interface{}{"args": strings.Join(args, " ")})
}

func (GitTracer) Failure(args []string, msg string) {
	logging.Trace("git.failure", map[string]interface{}{
		"args":  strings.Join(args, " "),
		"error": msg,
	})
}
