// internal/email/dispatcher.go
package email

import (
	"log/slog"
	"sync"
)

// Sender delivers one rendered notification. *Service satisfies it.
type Sender interface {
	SendEmail(data EmailData) error
}

// Dispatcher decouples notification delivery from the request path. In async
// mode Submit enqueues onto a buffered channel drained by a worker pool; in
// sync mode it sends inline. In both modes delivery failures are reported to
// the logger and never to the caller: a failed email must not roll back or
// block the state mutation that triggered it.
type Dispatcher struct {
	sender Sender
	logger *slog.Logger
	async  bool

	queue chan Notification
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(sender Sender, logger *slog.Logger, async bool, workers int) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: logger,
		async:  async,
	}

	if async {
		if workers < 1 {
			workers = 1
		}
		d.queue = make(chan Notification, 256)
		d.wg.Add(workers)
		for i := 0; i < workers; i++ {
			go d.worker()
		}
	}

	return d
}

// Submit hands off a notification for delivery. It never blocks on provider
// I/O in async mode and never returns an error in either mode.
func (d *Dispatcher) Submit(n Notification) {
	if !d.async {
		d.send(n)
		return
	}

	select {
	case d.queue <- n:
	default:
		// Queue full. Dropping beats blocking the request path.
		d.logger.Warn("notification queue full, dropping",
			"event", n.Event,
			"template", n.Template,
			"to", n.To,
		)
	}
}

// Close drains the queue and stops the workers.
func (d *Dispatcher) Close() {
	if !d.async {
		return
	}
	d.once.Do(func() { close(d.queue) })
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.queue {
		d.send(n)
	}
}

func (d *Dispatcher) send(n Notification) {
	err := d.sender.SendEmail(EmailData{
		To:           n.To,
		Subject:      n.Subject,
		TemplateName: n.Template,
		TemplateData: n.Context,
	})
	if err != nil {
		d.logger.Error("notification delivery failed",
			"event", n.Event,
			"template", n.Template,
			"to", n.To,
			"error", err,
		)
	}
}
