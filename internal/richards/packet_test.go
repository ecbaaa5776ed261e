package richards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketQueue(t *testing.T) {
	t.Run("appends at the tail", func(t *testing.T) {
		a := NewPacket(nil, Worker, WorkPacket)
		b := NewPacket(nil, Worker, WorkPacket)
		c := NewPacket(nil, Worker, WorkPacket)

		head := appendPacket(a, nil)
		head = appendPacket(b, head)
		head = appendPacket(c, head)

		assert.Same(t, a, head)
		assert.Same(t, b, head.Link())
		assert.Same(t, c, head.Link().Link())
		assert.Nil(t, c.Link())
	})

	t.Run("drops the old link of the appended packet", func(t *testing.T) {
		stale := NewPacket(nil, DeviceA, DevicePacket)
		p := NewPacket(stale, DeviceA, DevicePacket)

		head := appendPacket(p, nil)
		assert.Same(t, p, head)
		assert.Nil(t, head.Link())
	})

	t.Run("new packets are pushed in front", func(t *testing.T) {
		first := NewPacket(nil, DeviceB, DevicePacket)
		second := NewPacket(first, DeviceB, DevicePacket)

		assert.Same(t, first, second.Link())
		assert.Equal(t, DeviceB, second.Identity())
		assert.Equal(t, DevicePacket, second.Kind())
		assert.Equal(t, [DataSize]int{}, second.Data())
	})
}
