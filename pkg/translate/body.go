package translate

import "strconv"

// NewMessageBody renders the top-level body for a message launch. The
// bannermessages array carries exactly one message today; the array form
// is part of the device contract.
func NewMessageBody(dev Device, purpose string, msg *Object) string {
	o := NewObject()
	o.String("password", dev.Password)
	o.String("bannerpurpose", purpose)
	o.String("hardware_deviceid", dev.DeviceID)
	o.String("hardware_recno", strconv.Itoa(dev.Recno))
	o.Objects("bannermessages", []*Object{msg})
	return o.Render()
}

// StopMessageBody renders the stop body for one message. The purpose
// name is historical: it stops any message kind, not just scrolling.
func StopMessageBody(dev Device, recno int) string {
	o := NewObject()
	o.String("password", dev.Password)
	o.String("bannerpurpose", PurposeStopScrollingMessage)
	o.String("recno_zx", strconv.Itoa(recno))
	return o.Render()
}

// ClearSignBody renders the clear-everything body.
func ClearSignBody(dev Device) string {
	o := NewObject()
	o.String("password", dev.Password)
	o.String("bannerpurpose", PurposeClearSign)
	return o.Render()
}

// UpdateSeqBody renders the re-sequencing body: the authoritative
// sequence string plus a compact object per populated slot, in slot
// order.
func UpdateSeqBody(dev Device, seq string, msgs []*Object) string {
	o := NewObject()
	o.String("password", dev.Password)
	o.String("bannerpurpose", PurposeUpdateSeq)
	o.String("seqstring", seq)
	o.Objects("bannermessages", msgs)
	return o.Render()
}
