package common

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// PermissionTag names the money-market privileges the suite checks.
type PermissionTag uint8

const (
	PermissionAdmin PermissionTag = iota + 1
	PermissionTransfer
	PermissionSwap
	PermissionPerp
)

func (p PermissionTag) String() string {
	switch p {
	case PermissionAdmin:
		return "Admin"
	case PermissionTransfer:
		return "Transfer"
	case PermissionSwap:
		return "Swap"
	case PermissionPerp:
		return "Perp"
	default:
		return "Unknown"
	}
}

// AuthorizationContext is built per call and discarded after the check.
type AuthorizationContext struct {
	Caller   string
	Required PermissionTag
}

func NewAuthorizationContext(caller string, required PermissionTag) AuthorizationContext {
	return AuthorizationContext{Caller: caller, Required: required}
}

// AuthorizationBackend is the external permission service. It returns the
// addresses holding a tag; an empty group means the action is public.
type AuthorizationBackend interface {
	PermissionGroup(ctx context.Context, tag PermissionTag) ([]string, error)
}

// AuthorizationBridge is a stateless translation from money-market
// permission tags to the backend's group model. It is the single source
// of truth for "may this caller perform this privileged action".
type AuthorizationBridge struct {
	backend AuthorizationBackend
}

func NewAuthorizationBridge(backend AuthorizationBackend) *AuthorizationBridge {
	return &AuthorizationBridge{backend: backend}
}

func (b *AuthorizationBridge) Check(ctx context.Context, authCtx AuthorizationContext) error {
	group, err := b.backend.PermissionGroup(ctx, authCtx.Required)
	if err != nil {
		return errors.Wrapf(err, "permission group %s", authCtx.Required)
	}
	if len(group) == 0 {
		return nil
	}
	if slices.Contains(group, authCtx.Caller) {
		return nil
	}
	return errors.Wrapf(ErrUnauthorized, "%s lacks %s", authCtx.Caller, authCtx.Required)
}
