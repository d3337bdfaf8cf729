// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/ledger"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/registrar"
	"github.com/canonical/workspace-service/internal/retry"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const defaultSeat int32 = 1

type Config struct {
	RegionUID string

	// MaxAttempts bounds the whole reserve-register-materialize sequence,
	// not individual store calls.
	MaxAttempts int

	// ReservationStaleness is how old a foreign-region reservation must be
	// before initialize mode treats it as abandoned.
	ReservationStaleness time.Duration
}

// ProvisionOptions carries the normal-mode extras.
type ProvisionOptions struct {
	// LastWorkspaceUID is a caller-supplied hint naming the workspace the
	// user last worked in. When it names a different, joined workspace,
	// the issued tokens point there instead of the private workspace. The
	// provisioning invariants are unaffected.
	LastWorkspaceUID string
}

var _ ServiceInterface = (*Service)(nil)

// Service drives the provisioning state machine: reserve a seat in the
// global ledger, register or bind the regional identity, materialize a
// kubeconfig and sign tokens, retrying the whole sequence on transient
// failures. Coordination across concurrent calls happens entirely in the
// two stores; the service keeps no cross-request state.
type Service struct {
	ledger    LedgerInterface
	registrar RegistrarInterface
	kube      KubeconfigInterface
	issuer    IssuerInterface

	config  Config
	retrier *retry.Retrier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	l LedgerInterface,
	r RegistrarInterface,
	kube KubeconfigInterface,
	issuer IssuerInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := &Service{
		ledger:    l,
		registrar: r,
		kube:      kube,
		issuer:    issuer,
		config:    config,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}

	s.retrier = retry.New(
		retry.Config{MaxAttempts: config.MaxAttempts},
		isRetryable,
		logger,
	)

	return s
}

// isRetryable classifies attempt failures. Not-ready conditions and
// unrepairable mismatches are terminal; everything else, store I/O errors
// and constraint races included, is worth another run of the sequence.
func isRetryable(err error) bool {
	var nr *NotReadyError
	if errors.As(err, &nr) {
		return false
	}

	var mismatch *registrar.MismatchError
	if errors.As(err, &mismatch) {
		return false
	}

	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Provision ensures the user's private workspace exists in this region and
// returns a kubeconfig plus signed tokens bound to it. Repeated calls
// converge on the same workspace and control record.
func (s *Service) Provision(ctx context.Context, userID, userUID string, opts ProvisionOptions) (*types.Credentials, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.Provision")
	defer span.End()

	account, err := s.ledger.GetAccount(ctx, userUID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return nil, &NotReadyError{Reason: ReasonAccountMissing}
		}
		return nil, err
	}
	if !account.Inited {
		return nil, &NotReadyError{Reason: ReasonNotOnboarded}
	}

	var creds *types.Credentials
	err = s.retrier.Do(ctx, func(ctx context.Context) error {
		payload, err := s.resolveIdentity(ctx, userID, userUID, "")
		if err != nil {
			return err
		}

		creds, err = s.materialize(ctx, payload, opts.LastWorkspaceUID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return creds, nil
}

// Initialize bootstraps the user's very first workspace, once globally. The
// isInited flag is flipped only after the regional identity and kubeconfig
// are confirmed, so a crash mid-provisioning never strands an inited
// account without a usable identity.
func (s *Service) Initialize(ctx context.Context, userID, userUID, workspaceName string) (*types.Credentials, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.Initialize")
	defer span.End()

	account, err := s.ledger.GetAccount(ctx, userUID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return nil, &NotReadyError{Reason: ReasonAccountMissing}
		}
		return nil, err
	}
	if account.Inited {
		return nil, &NotReadyError{Reason: ReasonAlreadyInitialized}
	}

	if err := s.clearForeignReservations(ctx, userUID); err != nil {
		return nil, err
	}

	var creds *types.Credentials
	err = s.retrier.Do(ctx, func(ctx context.Context) error {
		payload, err := s.resolveIdentity(ctx, userID, userUID, workspaceName)
		if err != nil {
			return err
		}

		creds, err = s.materialize(ctx, payload, "")
		if err != nil {
			return err
		}

		// Last write of the pipeline, see above.
		return s.ledger.MarkInited(ctx, userUID)
	})
	if err != nil {
		return nil, err
	}

	return creds, nil
}

// clearForeignReservations enforces the one-initialization-at-a-time rule:
// a fresh reservation in another region blocks this one, a stale one is
// treated as abandoned and deleted.
func (s *Service) clearForeignReservations(ctx context.Context, userUID string) error {
	usages, err := s.ledger.ReadUsageAllRegions(ctx, userUID)
	if err != nil {
		return err
	}

	for _, u := range usages {
		if u.RegionUID == s.config.RegionUID {
			continue
		}

		if time.Since(u.CreatedAt) < s.config.ReservationStaleness {
			return &NotReadyError{Reason: ReasonForeignInit}
		}

		s.logger.Warnf("clearing stale reservation for user %s in region %s (age %v)",
			userUID, u.RegionUID, time.Since(u.CreatedAt))
		if err := s.ledger.RollbackReserve(ctx, u.RegionUID, u.UserUID, u.WorkspaceUID); err != nil {
			return err
		}
	}

	return nil
}

// resolveIdentity runs one pass of the ledger/registrar reconciliation:
// reserve a fresh seat when none exists, otherwise bind to the reserved
// workspace, repairing the ledger if an account merge explains a mismatch.
func (s *Service) resolveIdentity(ctx context.Context, userID, userUID, displayName string) (*types.IdentityPayload, error) {
	usages, err := s.ledger.ReadUsage(ctx, userUID, s.config.RegionUID)
	if err != nil {
		return nil, err
	}

	candidate := ""
	fresh := len(usages) == 0
	if fresh {
		candidate = uuid.New().String()
		if err := s.ledger.Reserve(ctx, candidate, userUID, s.config.RegionUID, defaultSeat); err != nil {
			// A concurrent call won the reservation race; the next
			// attempt reads its row and binds to it.
			return nil, err
		}
	} else {
		candidate = usages[0].WorkspaceUID
	}

	payload, err := s.registrar.RegisterOrBind(ctx, userID, userUID, candidate, displayName)
	if err != nil {
		var mismatch *registrar.MismatchError
		if errors.As(err, &mismatch) {
			return s.repairLedger(ctx, userUID, mismatch)
		}

		if fresh {
			// First-time attempt produced no usable identity; release
			// the seat so a later run starts clean. Reservations from
			// earlier attempts are deliberately left in place.
			if rbErr := s.ledger.RollbackReserve(ctx, s.config.RegionUID, userUID, candidate); rbErr != nil {
				s.logger.Errorf("failed to rollback reservation %s for user %s: %v", candidate, userUID, rbErr)
			}
		}
		return nil, err
	}

	return payload, nil
}

// repairLedger handles the drift between the two stores. With a merge
// marker the regional workspace is authoritative and the ledger is
// realigned; without one the mismatch is surfaced as a terminal fault,
// never guessed away.
func (s *Service) repairLedger(ctx context.Context, userUID string, mismatch *registrar.MismatchError) (*types.IdentityPayload, error) {
	merged, err := s.ledger.HasMergeMarker(ctx, userUID)
	if err != nil {
		return nil, err
	}

	if !merged {
		s.logger.Errorf("unrecoverable workspace mismatch for user %s: ledger %s, regional %s",
			userUID, mismatch.LedgerWorkspaceUID, mismatch.RegionalWorkspaceUID)
		return nil, mismatch
	}

	rows, err := s.ledger.RepairMismatch(ctx, s.config.RegionUID, userUID,
		mismatch.LedgerWorkspaceUID, mismatch.RegionalWorkspaceUID)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("repaired %d ledger rows for user %s after account merge", rows, userUID)

	return s.registrar.GetPrivateIdentity(ctx, userUID)
}

// materialize turns an identity payload into caller-facing credentials,
// honoring the last-used workspace hint for token scoping.
func (s *Service) materialize(ctx context.Context, payload *types.IdentityPayload, hintWorkspaceUID string) (*types.Credentials, error) {
	if hintWorkspaceUID != "" && hintWorkspaceUID != payload.WorkspaceUID {
		ws, err := s.registrar.FindMembership(ctx, payload.UserCrUID, hintWorkspaceUID)
		switch {
		case err == nil:
			scoped := *payload
			scoped.WorkspaceID = ws.ID
			scoped.WorkspaceUID = ws.UID
			payload = &scoped
		case errors.Is(err, registrar.ErrNotFound):
			// Hint names a workspace the user never joined or already
			// left; fall back to the private workspace.
		default:
			return nil, err
		}
	}

	kubeconfig, err := s.kube.Generate(ctx, payload.UserCrUID, payload.UserCrName)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.issuer.SignAccessToken(payload)
	if err != nil {
		return nil, err
	}

	appToken, err := s.issuer.SignAppToken(payload)
	if err != nil {
		return nil, err
	}

	return &types.Credentials{
		Kubeconfig:  kubeconfig,
		AccessToken: accessToken,
		AppToken:    appToken,
	}, nil
}
