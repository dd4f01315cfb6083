package api

import (
	"context"
	"errors"
)

type keyType string

const adminSubjectKey keyType = "adminSubject"

// ctxWithAdminSubject records the authenticated admin subject on the context
func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// ctxGetAdminSubject retrieves the authenticated admin subject from the context
func ctxGetAdminSubject(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(adminSubjectKey)
	if ctxValue == nil {
		return "", errors.New("admin subject not found in context")
	}
	subject, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("admin subject is not of type `string`")
	}
	return subject, nil
}
