package scoring

import "fmt"

// UnknownStrategyError is returned when a strategy name is not registered
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown scoring strategy %q (available: %s, %s)", e.Name, StrategyKeyword, StrategyCategory)
}
