package ast

import "fmt"

type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// ParseOperationType coerces the keyword spelling of an operation type.
func ParseOperationType(raw string) (OperationType, error) {
	switch raw {
	case "query":
		return OperationTypeQuery, nil
	case "mutation":
		return OperationTypeMutation, nil
	case "subscription":
		return OperationTypeSubscription, nil
	default:
		return OperationTypeUnknown, fmt.Errorf("invalid operation type: %q", raw)
	}
}
