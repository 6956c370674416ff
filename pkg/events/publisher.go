// Package events broadcasts search progress over NATS so other processes can
// follow a long solve.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/solver"
)

// DefaultSubjectPrefix is used when no prefix is configured
const DefaultSubjectPrefix = "roomies"

// Conn is the part of *nats.Conn the publisher needs
type Conn interface {
	Publish(subject string, data []byte) error
}

// ProgressEvent is published on <prefix>.progress
type ProgressEvent struct {
	RunID   string `json:"run_id,omitempty"`
	Percent int    `json:"percent"`
}

// ImprovedEvent is published on <prefix>.improved
type ImprovedEvent struct {
	RunID string `json:"run_id,omitempty"`
	solver.Improvement
}

// Publisher implements solver.Observer. Publishing is fire-and-forget:
// failures are logged and never reach the search.
type Publisher struct {
	conn   Conn
	prefix string
	runID  string
	logger *zap.Logger
	close  func()
}

// NewPublisher wraps an existing connection
func NewPublisher(conn Conn, prefix, runID string, logger *zap.Logger) *Publisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &Publisher{conn: conn, prefix: prefix, runID: runID, logger: logger}
}

// Connect dials NATS and returns a publisher that owns the connection
func Connect(url, prefix, runID string, logger *zap.Logger) (*Publisher, error) {
	nc, err := nats.Connect(url, nats.Name("roomies-solver"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	p := NewPublisher(nc, prefix, runID, logger)
	p.close = func() {
		if err := nc.Drain(); err != nil {
			logger.Warn("Failed to drain NATS connection", zap.Error(err))
		}
	}
	return p, nil
}

// Close drains the connection if the publisher owns one
func (p *Publisher) Close() {
	if p.close != nil {
		p.close()
	}
}

// ProgressSubject is the subject progress events are published on
func (p *Publisher) ProgressSubject() string {
	return p.prefix + ".progress"
}

// ImprovedSubject is the subject improvement events are published on
func (p *Publisher) ImprovedSubject() string {
	return p.prefix + ".improved"
}

func (p *Publisher) OnProgress(percent int) {
	p.publish(p.ProgressSubject(), ProgressEvent{RunID: p.runID, Percent: percent})
}

func (p *Publisher) OnImproved(improvement solver.Improvement) {
	p.publish(p.ImprovedSubject(), ImprovedEvent{RunID: p.runID, Improvement: improvement})
}

func (p *Publisher) publish(subject string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("Failed to encode event", zap.String("subject", subject), zap.Error(err))
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}

var _ solver.Observer = (*Publisher)(nil)
