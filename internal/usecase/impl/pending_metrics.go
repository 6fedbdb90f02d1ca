package impl

import (
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"
)

type statusChange struct {
	label  string
	status string
}

// pendingMetrics buffers state changes made inside a database transaction.
// emit is called once the transaction committed; a rolled back transaction
// records nothing.
type pendingMetrics struct {
	escrow  []statusChange
	payment []statusChange
}

func (p *pendingMetrics) escrowMoved(from, to entity.EscrowStatus) {
	p.escrow = append(p.escrow, statusChange{label: string(from), status: string(to)})
}

func (p *pendingMetrics) paymentMoved(provider entity.PaymentProvider, status entity.PaymentStatus) {
	p.payment = append(p.payment, statusChange{label: string(provider), status: string(status)})
}

func (p *pendingMetrics) emit(metrics service.MetricsRecorder) {
	for _, c := range p.escrow {
		metrics.EscrowTransition(c.label, c.status)
	}
	for _, c := range p.payment {
		metrics.PaymentTransition(c.label, c.status)
	}
	p.escrow, p.payment = nil, nil
}
