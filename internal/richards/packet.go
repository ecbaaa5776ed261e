package richards

import "fmt"

// TaskID identifies one of the fixed task kinds and indexes the task table.
type TaskID int

const (
	Idler TaskID = iota
	Worker
	HandlerA
	HandlerB
	DeviceA
	DeviceB

	NumTypes = 6
)

func (id TaskID) String() string {
	switch id {
	case Idler:
		return "idler"
	case Worker:
		return "worker"
	case HandlerA:
		return "handler-a"
	case HandlerB:
		return "handler-b"
	case DeviceA:
		return "device-a"
	case DeviceB:
		return "device-b"
	default:
		return fmt.Sprintf("task(%d)", int(id))
	}
}

type PacketKind int

const (
	DevicePacket PacketKind = iota
	WorkPacket
)

func (k PacketKind) String() string {
	if k == WorkPacket {
		return "work"
	}
	return "device"
}

// DataSize is the number of data slots carried by a packet.
const DataSize = 4

// Packet is a message passed between tasks. Packets chain through link to
// form a task's input queue.
type Packet struct {
	link     *Packet
	identity TaskID
	kind     PacketKind
	datum    int
	data     [DataSize]int
}

// NewPacket creates a packet addressed to identity and pushes it in front
// of link.
func NewPacket(link *Packet, identity TaskID, kind PacketKind) *Packet {
	return &Packet{
		link:     link,
		identity: identity,
		kind:     kind,
	}
}

func (p *Packet) Identity() TaskID { return p.identity }

func (p *Packet) Kind() PacketKind { return p.kind }

func (p *Packet) Datum() int { return p.datum }

func (p *Packet) Data() [DataSize]int { return p.data }

// Link returns the next packet in the queue.
func (p *Packet) Link() *Packet { return p.link }

func (p *Packet) String() string {
	return fmt.Sprintf("packet id: %s kind: %s", p.identity, p.kind)
}

// appendPacket adds p at the tail of the queue starting at head and returns
// the new head.
func appendPacket(p, head *Packet) *Packet {
	p.link = nil
	if head == nil {
		return p
	}

	mouse := head
	for mouse.link != nil {
		mouse = mouse.link
	}
	mouse.link = p

	return head
}
