package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

var errMissingSubject = errors.New("token has no subject claim")

// employeeIDFromRequest reads the authenticated employee id from the verified
// token's subject claim. AuthRequired guarantees the claim is present on every
// route under the protected group.
func employeeIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errMissingSubject
	}
	return sub, nil
}
