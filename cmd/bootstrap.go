package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"objectfs/core/config"
	"objectfs/core/errs"
	"objectfs/core/logger"
	"objectfs/core/objectclient"
	"objectfs/provider"

	"go.uber.org/zap"
)

// bootstrap loads the configuration, the logger and the selected client.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, objectclient.ObjectClient, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := provider.New(ctx, cfg, logg)
	if err != nil {
		return nil, nil, nil, clientError(err)
	}
	return cfg, logg, client, nil
}

// clientError adds the accepted provider names to configuration failures.
func clientError(err error) error {
	if errs.IsConfiguration(err) {
		return fmt.Errorf("failed to create object client (CLIENT_PROVIDER must be one of %s): %w",
			strings.Join(provider.Names, ", "), err)
	}
	return fmt.Errorf("failed to create object client: %w", err)
}

// printMessages writes diagnostics either as JSON or one line per message.
func printMessages(w io.Writer, messages []objectclient.Message, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(messages)
	}
	for _, m := range messages {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", m.Severity, m.Text); err != nil {
			return err
		}
	}
	return nil
}

// hasErrors reports whether any message is an error.
func hasErrors(messages []objectclient.Message) bool {
	for _, m := range messages {
		if m.Severity == objectclient.SeverityError {
			return true
		}
	}
	return false
}
