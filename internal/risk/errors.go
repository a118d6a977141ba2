package risk

import "errors"

var (
	ErrScenarioOutOfRange = errors.New("scenario parameters out of range")
)
