package domain

import "context"

// ServicePort is consumed by handlers, the cli and other modules
type ServicePort interface {
	List(ctx context.Context, in ListInput) (ListResult, error)
	GenerateAndCheck(ctx context.Context, in GenerateInput) (GenerateResult, error)
	Check(ctx context.Context, in CheckInput) (CheckResult, error)
}
