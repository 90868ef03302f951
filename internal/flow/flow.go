// Package flow drives a money movement from user intent through validation,
// PIN capture and remote submission to a terminal, user-visible state. The
// remote Wallet Service is the authority on balances and PIN verification;
// the flow guarantees the submission is attempted at most once per
// confirmation and that the PIN never outlives the request it authorizes.
package flow

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wallet-client/internal/model"
	"wallet-client/internal/secret"
	"wallet-client/pkg/errno"
)

// State of a transaction confirmation flow.
type State string

const (
	StateDrafting       State = "drafting"
	StateValidating     State = "validating_input"
	StateAwaitingSecret State = "awaiting_secret"
	StateSubmitting     State = "submitting"
	StateSucceeded      State = "succeeded"
	StateFailed         State = "failed"
	StateCancelled      State = "cancelled"
)

// Kind of money movement.
type Kind string

const (
	KindAddFunds Kind = "add_funds"
	KindTransfer Kind = "transfer"
)

// Draft holds the user-entered transaction parameters. It survives a failed
// submission so the user can retry without re-typing, but it is never
// transmitted without a freshly captured PIN.
type Draft struct {
	Kind        Kind
	Amount      decimal.Decimal
	RecipientID string
}

// Gateway is the slice of the Wallet Service the flow needs. Satisfied by
// *api.Client.
type Gateway interface {
	AddMoney(ctx context.Context, amount decimal.Decimal, pin string) (model.WalletSnapshot, error)
	Transfer(ctx context.Context, toUserID string, amount decimal.Decimal, pin string) (model.TransferReceipt, error)
	Wallet(ctx context.Context, pin string) (model.WalletSnapshot, error)
	RecentTransactions(ctx context.Context) ([]model.Transaction, error)
}

// Outcome of a completed submission.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Result is what the UI renders once the flow reaches Succeeded or Failed.
type Result struct {
	Outcome  Outcome
	Message  string
	Err      error                 // errno kind, nil on success
	Snapshot *model.WalletSnapshot // refreshed balance, nil if the refresh failed
	Receipt  *model.TransferReceipt
	Recent   []model.Transaction
}

// Flow is a single transaction confirmation instance, owned by one screen
// or command at a time.
type Flow struct {
	mu       sync.Mutex
	state    State
	draft    Draft
	inFlight bool
	result   *Result

	gateway Gateway
	log     *zap.Logger
}

// New starts a flow in Drafting.
func New(kind Kind, gateway Gateway, log *zap.Logger) *Flow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Flow{
		state:   StateDrafting,
		draft:   Draft{Kind: kind},
		gateway: gateway,
		log:     log,
	}
}

// ParseAmount turns user input into a decimal, rejecting non-numeric text
// locally. The digits are preserved exactly; no rounding ever happens on
// the client.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errno.ErrInvalidInput
	}
	return d, nil
}

// SetAmount updates the draft amount. Only legal while Drafting.
func (f *Flow) SetAmount(amount decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateDrafting {
		return errno.ErrFlowState
	}
	f.draft.Amount = amount
	return nil
}

// SetRecipient updates the draft recipient. Only legal while Drafting.
func (f *Flow) SetRecipient(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateDrafting {
		return errno.ErrFlowState
	}
	f.draft.RecipientID = userID
	return nil
}

// Proceed validates the draft. On success the flow moves to AwaitingSecret
// and the PIN capture surface should be opened; on a validation failure it
// returns to Drafting with the error and no network interaction.
func (f *Flow) Proceed() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateDrafting {
		return errno.ErrFlowState
	}

	f.state = StateValidating
	if err := validate(f.draft); err != nil {
		f.state = StateDrafting
		return err
	}
	f.state = StateAwaitingSecret
	return nil
}

func validate(d Draft) error {
	if !d.Amount.IsPositive() {
		return errno.ErrInvalidInput
	}
	if d.Kind == KindTransfer && d.RecipientID == "" {
		return errno.ErrInvalidInput.WithMessage("Please select a recipient")
	}
	return nil
}

// Confirm submits the draft authorized by the given PIN entry. Exactly one
// remote call is made per AwaitingSecret -> Submitting traversal; repeated
// confirmations while one is in flight fail with ErrInFlight and trigger
// nothing. The entry is wiped before Confirm returns, success or failure.
func (f *Flow) Confirm(ctx context.Context, entry *secret.Entry) (*Result, error) {
	f.mu.Lock()
	if f.state == StateSubmitting || f.inFlight {
		f.mu.Unlock()
		return nil, errno.ErrInFlight
	}
	if f.state != StateAwaitingSecret {
		f.mu.Unlock()
		return nil, errno.ErrFlowState
	}

	pin, err := entry.Reveal()
	if err != nil {
		// A consumed entry keeps the flow where it is; the user must
		// capture a fresh PIN.
		f.mu.Unlock()
		return nil, err
	}

	f.state = StateSubmitting
	f.inFlight = true
	draft := f.draft
	f.mu.Unlock()

	result := f.submit(ctx, draft, pin)
	entry.Wipe()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	f.result = result
	if result.Outcome == OutcomeSuccess {
		f.state = StateSucceeded
	} else {
		f.state = StateFailed
	}
	return result, result.Err
}

// submit performs the remote call and, on success, the snapshot and recent
// transaction refreshes. The service does not retain the PIN across calls,
// so the balance refresh re-supplies the exact same value before it is
// discarded for good.
func (f *Flow) submit(ctx context.Context, draft Draft, pin string) *Result {
	var (
		receipt model.TransferReceipt
		err     error
	)

	switch draft.Kind {
	case KindTransfer:
		receipt, err = f.gateway.Transfer(ctx, draft.RecipientID, draft.Amount, pin)
	default:
		_, err = f.gateway.AddMoney(ctx, draft.Amount, pin)
	}

	if err != nil {
		_, msg := errno.Decode(err)
		f.log.Info("submission rejected",
			zap.String("kind", string(draft.Kind)),
			zap.String("amount", draft.Amount.String()),
			zap.String("reason", msg))
		return &Result{Outcome: OutcomeFailure, Message: msg, Err: err}
	}

	result := &Result{Outcome: OutcomeSuccess, Message: "Transaction completed"}
	if draft.Kind == KindTransfer {
		result.Receipt = &receipt
	}

	// An acknowledged mutation is authoritative; a failed refresh does not
	// downgrade it. The snapshot is simply absent and the error logged.
	if snap, refreshErr := f.gateway.Wallet(ctx, pin); refreshErr == nil {
		result.Snapshot = &snap
	} else {
		f.log.Warn("balance refresh failed after successful submission", zap.Error(refreshErr))
	}
	if recent, refreshErr := f.gateway.RecentTransactions(ctx); refreshErr == nil {
		result.Recent = recent
	} else {
		f.log.Warn("transaction refresh failed after successful submission", zap.Error(refreshErr))
	}

	return result
}

// Retry moves a failed flow back to AwaitingSecret. The draft is intact;
// a fresh PIN entry is required, the previous one is gone.
func (f *Flow) Retry() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFailed {
		return errno.ErrFlowState
	}
	f.state = StateAwaitingSecret
	f.result = nil
	return nil
}

// Cancel abandons the flow. Legal from every state except Submitting: an
// in-flight request is allowed to complete and its result still lands in
// the flow, whether or not anyone is left looking at it.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return errno.ErrFlowState
	}
	f.state = StateCancelled
	return nil
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft returns a copy of the current draft.
func (f *Flow) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Result returns the terminal result, nil before the flow completes.
func (f *Flow) Result() *Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}
