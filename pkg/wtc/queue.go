package wtc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/wtccommand"
)

// Queue is the shared command queue backed by the wtc_commands table.
// Writes append; reads atomically claim and delete the oldest matching
// row, so each envelope is consumed by at most one reader.
type Queue struct {
	client       *ent.Client
	node         string
	pollInterval time.Duration
}

// NewQueue creates a queue bound to this node's name. pollInterval is
// the cooperative delay applied between empty reads during round-trips.
func NewQueue(client *ent.Client, node string, pollInterval time.Duration) *Queue {
	return &Queue{
		client:       client,
		node:         node,
		pollInterval: pollInterval,
	}
}

// Write appends an envelope. Writers never block on queue failure: the
// error is returned for logging and the caller continues.
func (q *Queue) Write(ctx context.Context, env Envelope) error {
	node := env.NodeName
	if node == "" {
		node = q.node
	}
	err := q.client.WtcCommand.Create().
		SetCommand(env.Command).
		SetSource(env.Source).
		SetDestination(env.Destination).
		SetPid(env.PID).
		SetHardwareRecno(env.HardwareRecno).
		SetStreamRecno(env.StreamRecno).
		SetTemplateRecno(env.TemplateRecno).
		SetSequence(env.Sequence).
		SetMessage(env.Message).
		SetReturnNode(env.ReturnNode).
		SetFlag(env.Flag).
		SetSeqOperation(env.SeqOperation).
		SetMessageType(env.MessageType).
		SetNodeName(node).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to write queue envelope: %w", err)
	}
	return nil
}

// WriteEnd emits the end-of-response sentinel for a response stream.
func (q *Queue) WriteEnd(ctx context.Context, base Envelope) error {
	base.Flag = FlagEnd
	base.Message = ""
	return q.Write(ctx, base)
}

// WriteCancel emits the cancel sentinel for a response stream.
func (q *Queue) WriteCancel(ctx context.Context, base Envelope) error {
	base.Flag = FlagCancel
	base.Message = ""
	return q.Write(ctx, base)
}

// Read claims and removes the oldest envelope matching the filter.
// Returns ErrNoCommands when no row matches. Rows matching a given
// filter are delivered in write order; no ordering holds across filters.
func (q *Queue) Read(ctx context.Context, f Filter) (*Envelope, error) {
	tx, err := q.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.WtcCommand.Query()
	if f.Command != "" {
		query = query.Where(wtccommand.CommandEQ(f.Command))
	}
	if f.Source != "" {
		query = query.Where(wtccommand.SourceEQ(f.Source))
	}
	if f.Destination != "" {
		query = query.Where(wtccommand.DestinationEQ(f.Destination))
	}
	if f.HardwareRecno != 0 {
		query = query.Where(wtccommand.HardwareRecnoEQ(f.HardwareRecno))
	}

	// SELECT ... FOR UPDATE SKIP LOCKED, oldest id first for FIFO.
	row, err := query.
		Order(ent.Asc(wtccommand.FieldID)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoCommands
		}
		return nil, fmt.Errorf("failed to query queue: %w", err)
	}

	// Consume: the row is deleted in the same transaction as the claim.
	if err := tx.WtcCommand.DeleteOneID(row.ID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to consume queue row: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit queue read: %w", err)
	}

	return &Envelope{
		Command:       row.Command,
		Source:        row.Source,
		Destination:   row.Destination,
		PID:           row.Pid,
		HardwareRecno: row.HardwareRecno,
		StreamRecno:   row.StreamRecno,
		TemplateRecno: row.TemplateRecno,
		Sequence:      row.Sequence,
		Message:       row.Message,
		ReturnNode:    row.ReturnNode,
		Flag:          row.Flag,
		SeqOperation:  row.SeqOperation,
		MessageType:   row.MessageType,
		NodeName:      row.NodeName,
	}, nil
}

// ReadResponses drains a response stream: data envelopes up to (and not
// including) the first sentinel. Empty reads poll on the queue's
// interval until the timeout elapses.
func (q *Queue) ReadResponses(ctx context.Context, f Filter, timeout time.Duration) ([]*Envelope, error) {
	deadline := time.Now().Add(timeout)
	var out []*Envelope
	for {
		env, err := q.Read(ctx, f)
		if err != nil {
			if !errors.Is(err, ErrNoCommands) {
				return out, err
			}
			if time.Now().After(deadline) {
				return out, ErrResponseTimeout
			}
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(q.pollInterval):
			}
			continue
		}
		if env.IsSentinel() {
			return out, nil
		}
		out = append(out, env)
		if time.Now().After(deadline) {
			return out, ErrResponseTimeout
		}
	}
}

// PurgeNode removes stale rows tagged with this node's name. Run once at
// startup before workers spawn, so half-consumed round-trips from a
// previous run cannot confuse fresh readers.
func (q *Queue) PurgeNode(ctx context.Context) (int, error) {
	n, err := q.client.WtcCommand.Delete().
		Where(wtccommand.NodeNameEQ(q.node)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge queue rows for node %s: %w", q.node, err)
	}
	return n, nil
}
