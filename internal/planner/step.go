package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/missionfuel/internal/fuel"
)

// ErrInvalidStep indicates a token that is not in "action:body" form.
var ErrInvalidStep = errors.New("invalid step")

// ParseStep parses an "action:body" token.
//
// Only the shape is checked here. Whether the action and body are supported
// is decided by Validate.
func ParseStep(token string) (Step, error) {
	action, body, ok := strings.Cut(token, ":")
	if !ok || action == "" || body == "" {
		return Step{}, fmt.Errorf("%w: %q (expected action:body)", ErrInvalidStep, token)
	}
	return Step{Action: fuel.Action(action), Body: body}, nil
}

// ParsePath parses tokens into a Path, stopping at the first malformed one.
func ParsePath(tokens []string) (Path, error) {
	path := make(Path, 0, len(tokens))
	for _, token := range tokens {
		step, err := ParseStep(token)
		if err != nil {
			return nil, err
		}
		path = append(path, step)
	}
	return path, nil
}
