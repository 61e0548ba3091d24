package entity

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type (
	CtxKeyIP        struct{}
	CtxKeyPrincipal struct{}
	CtxKeyWorkMode  struct{}
)

// Principal is the authenticated caller resolved from the bearer token.
type Principal struct {
	ID       uuid.UUID `json:"id"`
	Role     Role      `json:"role"`
	IsWorker bool      `json:"isWorker"`
}

type WorkMode string

const (
	WorkModeWorker   WorkMode = "worker"
	WorkModeApprover WorkMode = "approver"
)

func ParseWorkMode(s string) WorkMode {
	if s == string(WorkModeWorker) {
		return WorkModeWorker
	}

	return WorkModeApprover
}

func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(CtxKeyPrincipal{}).(Principal)
	if !ok {
		return Principal{}, ErrUnauthorized
	}

	return p, nil
}

func SetPrincipalToContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, CtxKeyPrincipal{}, p)
}

func WorkModeFromContext(ctx context.Context) WorkMode {
	m, ok := ctx.Value(CtxKeyWorkMode{}).(WorkMode)
	if !ok {
		return WorkModeApprover
	}

	return m
}

func SetWorkModeToContext(ctx context.Context, m WorkMode) context.Context {
	return context.WithValue(ctx, CtxKeyWorkMode{}, m)
}
