package speech

import (
	"strings"

	"github.com/mirelabs/zelda/backend/internal/config"
)

// resolveCredentials returns the normalized app id and access token, or a
// clear error when either is missing.
func resolveCredentials(cfg config.SpeechConfig) (string, string, error) {
	appID := strings.TrimSpace(cfg.AppID)
	token := strings.TrimSpace(cfg.AccessToken)

	if appID == "" || token == "" {
		return "", "", ErrNotConfigured
	}

	return appID, token, nil
}
