package service

import (
	"context"
	"sync"

	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/implementation"
	"radiant-system-be/internal/repository/memory"
	"radiant-system-be/pkg/events"
	"radiant-system-be/pkg/recordstore"

	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

// mailerStub records sends without touching SMTP. Services mail from
// goroutines, so access is guarded.
type mailerStub struct {
	mu            sync.Mutex
	recoveryKeys  []string
	planApprovals []string
	ticketReplies []string
}

func (m *mailerStub) SendRecoveryKey(toEmail, fullName, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recoveryKeys = append(m.recoveryKeys, code)
	return nil
}

func (m *mailerStub) SendPlanApproved(toEmail, fullName, plan string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planApprovals = append(m.planApprovals, plan)
	return nil
}

func (m *mailerStub) SendTicketReply(toEmail, ticketId, subject string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticketReplies = append(m.ticketReplies, ticketId)
	return nil
}

type publisherStub struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *publisherStub) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *publisherStub) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// fixture wires every repository against a fresh in-memory store.
type fixture struct {
	users    contract.UserRepository
	tickets  contract.TicketRepository
	txns     contract.TransactionRepository
	vault    contract.VaultRepository
	sessions *memory.SessionRepository
	mailer   *mailerStub
	pub      *publisherStub
}

func newFixture() *fixture {
	store := recordstore.NewMemoryStore()
	log := nopLogger{}
	return &fixture{
		users:    implementation.NewUserRepository(store, log),
		tickets:  implementation.NewTicketRepository(store, log),
		txns:     implementation.NewTransactionRepository(store, log),
		vault:    implementation.NewVaultRepository(store, log),
		sessions: memory.NewSessionRepository(24 * time.Hour),
		mailer:   &mailerStub{},
		pub:      &publisherStub{},
	}
}
