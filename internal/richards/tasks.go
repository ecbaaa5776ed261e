package richards

// idleTask releases the two devices in a pseudo random order until its
// count runs out.
type idleTask struct {
	control int
	count   int
}

func (d *idleTask) Run(s *Scheduler, _ *Packet) *TaskControlBlock {
	d.count--
	if d.count == 0 {
		return s.HoldSelf()
	}

	if d.control&1 == 0 {
		d.control /= 2
		return s.Release(DeviceA)
	}

	d.control = (d.control / 2) ^ 53256
	return s.Release(DeviceB)
}

// workerTask fills work packets with letters and sends them alternately to
// the two handlers.
type workerTask struct {
	destination TaskID
	count       int
}

func (d *workerTask) Run(s *Scheduler, work *Packet) *TaskControlBlock {
	if work == nil {
		return s.MarkWaiting()
	}

	if d.destination == HandlerA {
		d.destination = HandlerB
	} else {
		d.destination = HandlerA
	}

	work.identity = d.destination
	work.datum = 0
	for i := range DataSize {
		d.count++
		if d.count > 26 {
			d.count = 1
		}
		work.data[i] = 'A' + d.count - 1
	}

	return s.QueuePacket(work)
}

// handlerTask pairs work packets with device packets, handing one datum of
// the current work packet to each device packet.
type handlerTask struct {
	workIn   *Packet
	deviceIn *Packet
}

func (d *handlerTask) Run(s *Scheduler, work *Packet) *TaskControlBlock {
	if work != nil {
		if work.kind == WorkPacket {
			d.workIn = appendPacket(work, d.workIn)
		} else {
			d.deviceIn = appendPacket(work, d.deviceIn)
		}
	}

	workPacket := d.workIn
	if workPacket == nil {
		return s.MarkWaiting()
	}

	count := workPacket.datum
	if count >= DataSize {
		d.workIn = workPacket.link
		return s.QueuePacket(workPacket)
	}

	devicePacket := d.deviceIn
	if devicePacket == nil {
		return s.MarkWaiting()
	}

	d.deviceIn = devicePacket.link
	devicePacket.datum = workPacket.data[count]
	workPacket.datum = count + 1

	return s.QueuePacket(devicePacket)
}

// deviceTask holds a single packet and sends it back once released.
type deviceTask struct {
	pending *Packet
}

func (d *deviceTask) Run(s *Scheduler, work *Packet) *TaskControlBlock {
	if work == nil {
		if d.pending == nil {
			return s.MarkWaiting()
		}

		work, d.pending = d.pending, nil
		return s.QueuePacket(work)
	}

	d.pending = work
	s.traceDatum(work.datum)

	return s.HoldSelf()
}
