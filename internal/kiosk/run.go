package kiosk

import "context"

// Run drives the controller from mailbox until ctx is cancelled. The current
// credit view is shown once on start; afterwards every consumed event produces
// exactly one Show call. Run idles while the mailbox is empty.
func (c *Controller) Run(ctx context.Context, mailbox *Mailbox, display Display) error {
	c.show(ctx, display, c.creditView())

	for {
		evt := mailbox.Take()
		if evt.IsNone() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-mailbox.Ready():
				continue
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.show(ctx, display, c.Step(evt))
	}
}

func (c *Controller) show(ctx context.Context, display Display, v View) {
	err := display.Show(ctx, v)
	if err != nil {
		c.logger.Warn("display update failed", "view", v.Kind(), "error", err)
	}
}
