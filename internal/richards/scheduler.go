package richards

import (
	"fmt"
	"io"
	"log/slog"
)

// Expected counters of a Start run.
const (
	ExpectedQueuePacketCount = 23246
	ExpectedHoldCount        = 9297

	// IdleCount is the number of turns the idle task runs before holding.
	IdleCount = 10000
)

// Scheduler runs a fixed set of cooperating tasks without preemption. The
// task returned by each behaviour is the one that runs next.
type Scheduler struct {
	taskList  *TaskControlBlock
	taskTable [NumTypes]*TaskControlBlock

	currentTask         *TaskControlBlock
	currentTaskIdentity TaskID

	queuePacketCount int
	holdCount        int

	dispatchers []func(TaskID)
	tracer      *tracer

	logger *slog.Logger
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		logger: slog.New(slog.DiscardHandler),
	}
}

func (s *Scheduler) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s.logger = logger
}

// OnDispatch registers fn to be called with the identity of every task the
// scheduler runs, in order.
func (s *Scheduler) OnDispatch(fn func(TaskID)) {
	s.dispatchers = append(s.dispatchers, fn)
}

// Trace writes the identity of each dispatched task and the datum of each
// packet reaching a device to w, 50 entries per line. A nil w disables
// tracing. Tracing stops at the first write error, which Run returns.
func (s *Scheduler) Trace(w io.Writer) {
	if w == nil {
		s.tracer = nil
		return
	}
	s.tracer = &tracer{w: w}
}

func (s *Scheduler) QueuePacketCount() int { return s.queuePacketCount }

func (s *Scheduler) HoldCount() int { return s.holdCount }

// Tasks returns the task list head.
func (s *Scheduler) Tasks() *TaskControlBlock { return s.taskList }

func (s *Scheduler) reset() {
	s.taskList = nil
	s.taskTable = [NumTypes]*TaskControlBlock{}
	s.currentTask = nil
	s.currentTaskIdentity = 0
	s.queuePacketCount = 0
	s.holdCount = 0
	if s.tracer != nil {
		s.tracer.layout = 0
		s.tracer.buf = nil
		s.tracer.err = nil
	}
}

func (s *Scheduler) createTask(identity TaskID, priority int, work *Packet, state State, task Task) {
	if identity < 0 || identity >= NumTypes {
		panic(fatal{fmt.Errorf("%w: cannot register %s", ErrUnknownTask, identity)})
	}

	t := newTaskControlBlock(s.taskList, identity, priority, work, state, task)
	s.taskList = t
	s.taskTable[identity] = t
}

func (s *Scheduler) CreateIdler(identity TaskID, priority int, work *Packet, state State) {
	s.createTask(identity, priority, work, state, &idleTask{control: 1, count: IdleCount})
}

func (s *Scheduler) CreateWorker(identity TaskID, priority int, work *Packet, state State) {
	s.createTask(identity, priority, work, state, &workerTask{destination: HandlerA})
}

func (s *Scheduler) CreateHandler(identity TaskID, priority int, work *Packet, state State) {
	s.createTask(identity, priority, work, state, &handlerTask{})
}

func (s *Scheduler) CreateDevice(identity TaskID, priority int, work *Packet, state State) {
	s.createTask(identity, priority, work, state, &deviceTask{})
}

// Schedule runs tasks until every task is holding or waiting with nothing
// to deliver.
func (s *Scheduler) Schedule() {
	s.currentTask = s.taskList
	for s.currentTask != nil {
		if s.currentTask.IsHoldingOrWaiting() {
			s.currentTask = s.currentTask.link
			continue
		}

		s.currentTaskIdentity = s.currentTask.identity
		s.dispatch(s.currentTaskIdentity)
		s.currentTask = s.currentTask.runTask(s)
	}
}

func (s *Scheduler) dispatch(id TaskID) {
	for _, fn := range s.dispatchers {
		fn(id)
	}
	if s.tracer != nil {
		s.tracer.trace(int(id))
	}
}

func (s *Scheduler) traceDatum(datum int) {
	if s.tracer != nil {
		s.tracer.trace(datum)
	}
}

func (s *Scheduler) findTask(identity TaskID) *TaskControlBlock {
	if identity < 0 || identity >= NumTypes || s.taskTable[identity] == nil {
		panic(fatal{fmt.Errorf("%w: %s", ErrUnknownTask, identity)})
	}
	return s.taskTable[identity]
}

// HoldSelf suspends the current task and continues with the next one in
// the task list.
func (s *Scheduler) HoldSelf() *TaskControlBlock {
	s.holdCount++
	s.currentTask.set(FlagTaskHolding, true)
	return s.currentTask.link
}

// MarkWaiting puts the current task to sleep until a packet arrives.
func (s *Scheduler) MarkWaiting() *TaskControlBlock {
	s.currentTask.set(FlagTaskWaiting, true)
	return s.currentTask
}

// QueuePacket sends packet to the task it is addressed to, stamping it with
// the sender's identity, and returns whichever of the two tasks should run
// next.
func (s *Scheduler) QueuePacket(packet *Packet) *TaskControlBlock {
	if packet == nil {
		panic(fatal{fmt.Errorf("%w: %s queued no packet", ErrEmptyQueue, s.currentTaskIdentity)})
	}

	t := s.findTask(packet.identity)

	s.queuePacketCount++
	packet.link = nil
	packet.identity = s.currentTaskIdentity

	return t.addInputAndCheckPriority(packet, s.currentTask)
}

// Release lets a holding task run again and returns it if it outranks the
// current task.
func (s *Scheduler) Release(identity TaskID) *TaskControlBlock {
	t := s.findTask(identity)
	t.set(FlagTaskHolding, false)

	if t.priority > s.currentTask.priority {
		return t
	}
	return s.currentTask
}

// Start builds the standard six task configuration, runs it to completion
// and reports whether the counters match the expected totals.
func (s *Scheduler) Start() bool {
	s.reset()

	s.CreateIdler(Idler, 0, nil, StateRunning)

	workQ := NewPacket(nil, Worker, WorkPacket)
	workQ = NewPacket(workQ, Worker, WorkPacket)
	s.CreateWorker(Worker, 1000, workQ, StateWaitingWithPacket)

	workQ = NewPacket(nil, DeviceA, DevicePacket)
	workQ = NewPacket(workQ, DeviceA, DevicePacket)
	workQ = NewPacket(workQ, DeviceA, DevicePacket)
	s.CreateHandler(HandlerA, 2000, workQ, StateWaitingWithPacket)

	workQ = NewPacket(nil, DeviceB, DevicePacket)
	workQ = NewPacket(workQ, DeviceB, DevicePacket)
	workQ = NewPacket(workQ, DeviceB, DevicePacket)
	s.CreateHandler(HandlerB, 3000, workQ, StateWaitingWithPacket)

	s.CreateDevice(DeviceA, 4000, nil, StateWaiting)
	s.CreateDevice(DeviceB, 5000, nil, StateWaiting)

	s.Schedule()
	s.tracer.flush()

	s.logger.Debug("richards run finished",
		"queue_packet_count", s.queuePacketCount,
		"hold_count", s.holdCount,
	)

	return s.queuePacketCount == ExpectedQueuePacketCount && s.holdCount == ExpectedHoldCount
}

// Result holds the counters of a finished run.
type Result struct {
	QueuePacketCount int
	HoldCount        int
}

// Verify reports an ErrVerification error when r differs from the expected
// totals.
func (r Result) Verify() error {
	if r.QueuePacketCount != ExpectedQueuePacketCount || r.HoldCount != ExpectedHoldCount {
		return fmt.Errorf("%w: queuePacketCount=%d (want %d) holdCount=%d (want %d)",
			ErrVerification,
			r.QueuePacketCount, ExpectedQueuePacketCount,
			r.HoldCount, ExpectedHoldCount,
		)
	}
	return nil
}

// Run is Start with fatal scheduler errors returned instead of raised.
func (s *Scheduler) Run() (result Result, err error) {
	err = Protect(func() {
		s.Start()
		result = Result{QueuePacketCount: s.queuePacketCount, HoldCount: s.holdCount}
	})
	if err != nil {
		return result, err
	}
	if err := s.tracer.writeErr(); err != nil {
		return result, fmt.Errorf("trace: %w", err)
	}

	return result, result.Verify()
}

// Protect calls fn and returns the fatal scheduler error raised inside it,
// if any. Other panics propagate unchanged.
func Protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fatal)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()

	fn()
	return nil
}
