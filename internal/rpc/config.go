package rpc

import (
	"github.com/sidefxlint/sidefxlint/internal/config"
	"github.com/sidefxlint/sidefxlint/internal/purity"
)

// parseConfigBytes decodes a config document sent inline on the wire
// (the daemon has no filesystem path to load from per request), reusing
// internal/config's yaml.v3 parser rather than duplicating it.
func parseConfigBytes(data []byte) ([]purity.Entry, error) {
	opts, err := config.Parse(data)
	if err != nil {
		return nil, err
	}
	return opts.NoSideEffectsWhenCalled, nil
}
