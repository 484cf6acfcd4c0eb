package config

import (
	"errors"
)

// EnvAPIKey is the environment variable the --api-key flag defaults from
const EnvAPIKey = "OW_API_KEY"

// ErrMissingCredential means no API key was found in any source
var ErrMissingCredential = errors.New("no OpenWeather API key configured")

// Reader is anything that can supply a stored credential
type Reader interface {
	Read() (string, error)
}

// ResolveAPIKey picks the API key to use.
//
// Priority order (highest to lowest):
//  1. explicit --api-key value
//  2. OW_API_KEY from the environment
//  3. first line of the credential file
//
// A missing credential file is not an error; the next source is tried.
func ResolveAPIKey(explicit, env string, stored Reader) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env != "" {
		return env, nil
	}

	if stored != nil {
		key, err := stored.Read()
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return "", err
		case key != "":
			return key, nil
		}
	}

	return "", ErrMissingCredential
}
