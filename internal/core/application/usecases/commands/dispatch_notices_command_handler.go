package commands

import (
	"context"
	"errors"

	"packagetracker/internal/core/ports"
)

// DispatchNoticesCommandHandler drains pending notices from the outbox and
// hands them to the notifier. Notices are processed independently: a
// transport failure marks that one notice for retry and the pass moves on,
// so a flaky mail provider never blocks the rest of the batch.
type DispatchNoticesCommandHandler struct {
	outbox   ports.NotificationOutbox
	notifier ports.Notifier
}

// NewDispatchNoticesCommandHandler creates a handler for outbox draining.
func NewDispatchNoticesCommandHandler(
	outbox ports.NotificationOutbox, notifier ports.Notifier,
) DispatchNoticesCommandHandler {
	return DispatchNoticesCommandHandler{
		outbox:   outbox,
		notifier: notifier,
	}
}

// Handle performs one drain pass and returns the number of notices sent.
// Send failures are recorded on the notice, not returned; only bookkeeping
// failures surface as errors.
func (h *DispatchNoticesCommandHandler) Handle(ctx context.Context, cmd DispatchNoticesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pending, err := h.outbox.Pending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	var sent int
	var markErrs []error
	for _, notice := range pending {
		m := h.notifier.Compose(notice.Subject, notice.Body)
		m = h.notifier.AddRecipient(m, notice.RecipientName, notice.RecipientEmail)

		if sendErr := h.notifier.Send(ctx, m); sendErr != nil {
			if markErr := h.outbox.MarkFailed(ctx, notice.ID); markErr != nil {
				markErrs = append(markErrs, markErr)
			}
			continue
		}

		if markErr := h.outbox.MarkSent(ctx, notice.ID); markErr != nil {
			markErrs = append(markErrs, markErr)
			continue
		}
		sent++
	}

	return sent, errors.Join(markErrs...)
}
