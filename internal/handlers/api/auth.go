package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gabapcia/recoverywallet/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingToken   = errors.New("missing bearer token")
	errInvalidSubject = errors.New("token subject is not an address")
	errNoSecret       = errors.New("token verification is not configured")
)

type callerKeyType struct{}

var callerKey = callerKeyType{}

// authenticate resolves the caller from the bearer token and stores it in the
// request context. Tokens without an exp claim are refused, and without a
// secret every token is.
func (h *handler) authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(h.secret) == 0 {
			writeError(w, r, http.StatusUnauthorized, "unauthenticated", errNoSecret)
			return
		}

		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeError(w, r, http.StatusUnauthorized, "unauthenticated", errMissingToken)
			return
		}

		var claims jwt.RegisteredClaims
		_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return h.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "unauthenticated", err)
			return
		}

		if !common.IsHexAddress(claims.Subject) {
			writeError(w, r, http.StatusUnauthorized, "unauthenticated", errInvalidSubject)
			return
		}

		caller := common.HexToAddress(claims.Subject)
		ctx := context.WithValue(r.Context(), callerKey, caller)
		ctx = logger.Derive(ctx, "caller", caller.Hex())

		next(w, r.WithContext(ctx))
	}
}

// callerFrom returns the authenticated caller of the request.
func callerFrom(ctx context.Context) (common.Address, bool) {
	caller, ok := ctx.Value(callerKey).(common.Address)
	return caller, ok
}
