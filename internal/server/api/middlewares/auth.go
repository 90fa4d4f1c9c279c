package middlewares

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	DefaultAuthHeader     = "Authorization"
	DefaultAuthHeaderType = "Bearer"
)

type HttpTokenGetter func(echo.Context) (string, error)

type AuthOpts struct {
	Tokens          []string
	HttpTokenGetter HttpTokenGetter
}

type AuthOpt func(*AuthOpts)

func AuthWithTokens(tokens []string) AuthOpt {
	return func(opts *AuthOpts) {
		opts.Tokens = tokens
	}
}

func AuthWithHttpTokenGetter(getter HttpTokenGetter) AuthOpt {
	return func(opts *AuthOpts) {
		opts.HttpTokenGetter = getter
	}
}

// Auth rejects requests whose bearer token is not in the configured set.
// An empty set disables the check.
type Auth struct {
	opts *AuthOpts
}

func NewAuth(opts ...AuthOpt) *Auth {
	option := &AuthOpts{
		HttpTokenGetter: DefaultAuthHttpHeaderGetter,
	}

	for _, opt := range opts {
		opt(option)
	}

	return &Auth{opts: option}
}

func (a *Auth) Http() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := a.checkHttpAuth(c); err != nil {
				return echo.ErrUnauthorized
			}
			return next(c)
		}
	}
}

func (a *Auth) checkHttpAuth(ctx echo.Context) error {
	if len(a.opts.Tokens) == 0 {
		return nil
	}

	token, err := a.opts.HttpTokenGetter(ctx)
	if err != nil {
		return err
	}

	return a.checkToken(token)
}

func (a *Auth) checkToken(token string) error {
	for _, t := range a.opts.Tokens {
		if subtle.ConstantTimeCompare([]byte(token), []byte(t)) == 1 {
			return nil
		}
	}

	return errors.New("token mismatch")
}

func DefaultAuthHttpHeaderGetter(ctx echo.Context) (string, error) {
	scheme, token, ok := strings.Cut(ctx.Request().Header.Get(DefaultAuthHeader), " ")
	if !ok || scheme != DefaultAuthHeaderType || token == "" {
		return "", errors.New("authorization not found")
	}

	return token, nil
}
