package authz

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -output action_enumer.go

// Action classifies an operation for permission checks.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// ReadOnly reports whether the action corresponds to a safe HTTP method.
func (a Action) ReadOnly() bool {
	return a == ActionRead
}
