package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

// Notification kinds.
const (
	KindAdminAlert       = "admin_alert"
	KindUserConfirmation = "user_confirmation"
)

const defaultTimeout = 10 * time.Second

// Outcome reports what happened to a single notification.
type Outcome struct {
	Attempted bool
	Succeeded bool
	Err       error
}

// LeadNotifier sends the two emails that follow a lead submission.
type LeadNotifier struct {
	sender     Sender
	adminEmail string
	signature  string
	timeout    time.Duration
	logger     *zap.Logger
}

// LeadNotifierConfig configures recipients and limits.
type LeadNotifierConfig struct {
	AdminEmail string
	Signature  string
	Timeout    time.Duration
}

// NewLeadNotifier wires a notifier around sender.
func NewLeadNotifier(sender Sender, cfg LeadNotifierConfig, logger *zap.Logger) *LeadNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &LeadNotifier{
		sender:     sender,
		adminEmail: cfg.AdminEmail,
		signature:  cfg.Signature,
		timeout:    cfg.Timeout,
		logger:     logger,
	}
}

// NotifyAdmin alerts the site owner about a new lead. It is not attempted
// when no admin address is configured.
func (n *LeadNotifier) NotifyAdmin(ctx context.Context, lead entity.Lead) Outcome {
	if n.adminEmail == "" {
		n.logger.Debug("admin alert skipped, no admin email configured", zap.String("lead_id", lead.ID.String()))
		return Outcome{}
	}
	return n.deliver(ctx, KindAdminAlert, lead, adminAlert(n.adminEmail, lead))
}

// ConfirmToUser thanks the submitter.
func (n *LeadNotifier) ConfirmToUser(ctx context.Context, lead entity.Lead) Outcome {
	return n.deliver(ctx, KindUserConfirmation, lead, userConfirmation(lead, n.signature))
}

func (n *LeadNotifier) deliver(ctx context.Context, kind string, lead entity.Lead, msg EmailMessage) (out Outcome) {
	out.Attempted = true
	if n.sender == nil {
		out.Err = fmt.Errorf("notify: no sender configured")
		n.logFailure(kind, lead, out.Err)
		return out
	}

	// A client disconnect must not abort delivery; only the timeout bounds it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			out.Succeeded = false
			out.Err = fmt.Errorf("notify: %s panicked: %v", kind, r)
			n.logFailure(kind, lead, out.Err)
		}
	}()

	if err := n.sender.Send(ctx, msg); err != nil {
		out.Err = err
		n.logFailure(kind, lead, err)
		return out
	}
	out.Succeeded = true
	return out
}

func (n *LeadNotifier) logFailure(kind string, lead entity.Lead, err error) {
	n.logger.Warn("lead notification failed",
		zap.String("kind", kind),
		zap.String("lead_id", lead.ID.String()),
		zap.Error(err),
	)
}
