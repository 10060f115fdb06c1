// Package wtc implements the durable command queue ("write-to-channel"
// table) that decouples producers — launch UI, sequencer, query endpoint —
// from the per-device dispatcher workers. Envelopes are single-consumer:
// a read claims and deletes the oldest matching row.
package wtc

import "github.com/messagenet/bannerd/ent/wtccommand"

// Flag values carried by an envelope. Data rows carry the payload;
// sentinel rows terminate a multi-row response.
const (
	FlagData   int8 = 0
	FlagEnd    int8 = 1
	FlagCancel int8 = 2
)

// Message-type values carried by sign-messages response envelopes.
const (
	MessageTypeActive  int8 = 1
	MessageTypeWaiting int8 = 2
	MessageTypeHidden  int8 = 3
)

// Envelope is one queue command. The field layout is fixed: readers
// dispatch on Command and the (Source, Destination) role pair.
type Envelope struct {
	Command       wtccommand.Command
	Source        wtccommand.Source
	Destination   wtccommand.Destination
	PID           int
	HardwareRecno int
	StreamRecno   int
	TemplateRecno int
	Sequence      string
	Message       string
	ReturnNode    string
	Flag          int8
	SeqOperation  int8
	MessageType   int8
	NodeName      string
}

// IsSentinel reports whether the envelope terminates a response stream.
func (e *Envelope) IsSentinel() bool {
	return e.Flag == FlagEnd || e.Flag == FlagCancel
}

// Filter selects envelopes for a read. Zero values match anything:
// an empty Command matches all command types, HardwareRecno 0 matches
// all devices.
type Filter struct {
	Command       wtccommand.Command
	Source        wtccommand.Source
	Destination   wtccommand.Destination
	HardwareRecno int
}
