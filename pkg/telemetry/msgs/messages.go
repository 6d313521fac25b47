package msgs

import (
	"github.com/golang/protobuf/proto"
)

// Frame is a line read from the position source.
type Frame struct {
	Source string `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Seq    uint64 `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Data   []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	// Terminated is false for the undelimited tail at end-of-stream.
	Terminated bool `protobuf:"varint,4,opt,name=terminated,proto3" json:"terminated,omitempty"`
}

// NewMessage implements Message.
func (m *Frame) NewMessage() Message { return &Frame{} }

// TypeID implements Message.
func (m *Frame) TypeID() uint32 { return FrameTypeID }

// ProtoMessage implements proto.Message.
func (m *Frame) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Frame) Reset() { *m = Frame{} }

// String implements proto.Message.
func (m *Frame) String() string { return proto.CompactTextString(m) }

// Pixels is a snapshot of the LED strip, 3 bytes per physical LED.
type Pixels struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Tick uint64 `protobuf:"varint,2,opt,name=tick,proto3" json:"tick,omitempty"`
}

// NewMessage implements Message.
func (m *Pixels) NewMessage() Message { return &Pixels{} }

// TypeID implements Message.
func (m *Pixels) TypeID() uint32 { return PixelsTypeID }

// ProtoMessage implements proto.Message.
func (m *Pixels) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Pixels) Reset() { *m = Pixels{} }

// String implements proto.Message.
func (m *Pixels) String() string { return proto.CompactTextString(m) }

// TypeID Groups
const (
	GroupStream uint32 = 0x00010000
	GroupLED    uint32 = 0x00020000
)

// TypeIDs
const (
	FrameTypeID  uint32 = GroupStream | TypeIDKindEvent | 0x0000
	PixelsTypeID uint32 = GroupLED | TypeIDKindEvent | 0x0000
)
