package arena

import "fmt"

// InvariantError reports a broken width/position invariant
// It is raised through panic: the state is unusable once it occurs
type InvariantError struct {
	Op       string
	Position float64
	WidthSum float64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("arena: %s: position %v does not resolve to a slot (width sum %v)", e.Op, e.Position, e.WidthSum)
}
