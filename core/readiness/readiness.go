package readiness

import (
	"context"

	"objectfs/core/objectclient"
)

// Step names the check that decided a readiness evaluation.
type Step string

const (
	StepReady            Step = "ready"
	StepHostConfig       Step = "host_config"
	StepProviderMismatch Step = "provider_mismatch"
	StepAvailability     Step = "availability"
	StepConnection       Step = "connection"
	StepPermissions      Step = "permissions"
)

// Decision is the outcome of one readiness evaluation.
type Decision struct {
	Ready  bool   `json:"ready"`
	Step   Step   `json:"step"`
	Reason string `json:"reason,omitempty"`
}

func notReady(step Step, reason string) Decision {
	return Decision{Ready: false, Step: step, Reason: reason}
}

// Evaluate runs the readiness checks in order and stops at the first one that
// fails. Later checks are never invoked once an earlier one has failed, so a
// provider mismatch never reaches the network.
//
// Permissions are always tested without delete.
func Evaluate(ctx context.Context, client objectclient.ObjectClient, cfg objectclient.Config) Decision {
	if cfg.FilesystemClass == "" {
		return notReady(StepHostConfig, "no filesystem is configured for the host")
	}

	if !cfg.ProviderMatches() {
		return notReady(StepProviderMismatch, "filesystem "+cfg.FilesystemClass+" does not match provider "+cfg.Provider)
	}

	if client == nil || !client.CheckAvailability() {
		return notReady(StepAvailability, "storage SDK is not available")
	}

	if conn := client.TestConnection(ctx); !conn.Success {
		return notReady(StepConnection, conn.Details)
	}

	if perms := client.TestPermissions(ctx, false); !perms.Success {
		return notReady(StepPermissions, perms.Details())
	}

	return Decision{Ready: true, Step: StepReady}
}
