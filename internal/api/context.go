package api

import (
	"context"

	"github.com/tovrr/belmobile-backend/pkg/session"
)

type ctxKey string

const ctxKeyStaff ctxKey = "staff"

func WithStaff(ctx context.Context, s *session.StaffIdentity) context.Context {
	return context.WithValue(ctx, ctxKeyStaff, s)
}

func StaffFromContext(ctx context.Context) *session.StaffIdentity {
	v := ctx.Value(ctxKeyStaff)
	if v == nil {
		return nil
	}
	s, _ := v.(*session.StaffIdentity)
	return s
}
