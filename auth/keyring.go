// Package auth persists the platform session cookie in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/livelink-cli/livelink/constant"
	"github.com/zalando/go-keyring"
)

const user = "sessdata"

// CookieName is the name of the session cookie the platform expects.
const CookieName = "SESSDATA"

// ErrNoSession is returned when no session cookie is stored.
var ErrNoSession = errors.New("no session stored")

// SetSession stores the session cookie value. A full "SESSDATA=..." pair is accepted too.
func SetSession(value string) error {
	value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), CookieName+"="))
	if value == "" {
		return errors.New("empty session value")
	}
	return keyring.Set(constant.Livelink, user, value)
}

// GetSession returns the stored session cookie value.
func GetSession() (string, error) {
	value, err := keyring.Get(constant.Livelink, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoSession
	}
	return value, err
}

// DeleteSession removes the stored session cookie.
func DeleteSession() error {
	err := keyring.Delete(constant.Livelink, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNoSession
	}
	return err
}

// Cookie returns the Cookie header value for the stored session, if any.
func Cookie() (string, bool) {
	value, err := GetSession()
	if err != nil || value == "" {
		return "", false
	}
	return CookieName + "=" + value, true
}
