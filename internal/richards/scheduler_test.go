package richards

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler(t *testing.T) {
	t.Run("reaches the expected fixed point", func(t *testing.T) {
		s := NewScheduler()

		assert.True(t, s.Start())
		assert.Equal(t, 23246, s.QueuePacketCount())
		assert.Equal(t, 9297, s.HoldCount())
	})

	t.Run("run reports the counters", func(t *testing.T) {
		result, err := NewScheduler().Run()
		require.NoError(t, err)
		assert.Equal(t, Result{QueuePacketCount: 23246, HoldCount: 9297}, result)
	})

	t.Run("is deterministic", func(t *testing.T) {
		record := func() ([]TaskID, Result) {
			var log []TaskID
			s := NewScheduler()
			s.OnDispatch(func(id TaskID) { log = append(log, id) })

			result, err := s.Run()
			require.NoError(t, err)
			return log, result
		}

		first, firstResult := record()
		second, secondResult := record()

		assert.NotEmpty(t, first)
		assert.Equal(t, first, second)
		assert.Equal(t, firstResult, secondResult)
	})

	t.Run("can be started again", func(t *testing.T) {
		s := NewScheduler()
		assert.True(t, s.Start())
		assert.True(t, s.Start())
	})

	t.Run("task list is newest first", func(t *testing.T) {
		s := NewScheduler()
		s.Start()

		var ids []TaskID
		for tcb := s.Tasks(); tcb != nil; tcb = tcb.Link() {
			ids = append(ids, tcb.Identity())
		}
		assert.Equal(t, []TaskID{DeviceB, DeviceA, HandlerB, HandlerA, Worker, Idler}, ids)
		assert.True(t, s.findTask(Idler).Has(FlagTaskHolding))
	})

	t.Run("unknown task is fatal", func(t *testing.T) {
		s := NewScheduler()
		s.CreateIdler(Idler, 0, nil, StateRunning)

		err := Protect(s.Schedule)
		assert.ErrorIs(t, err, ErrUnknownTask)
	})

	t.Run("verify rejects other totals", func(t *testing.T) {
		err := Result{QueuePacketCount: 1, HoldCount: 2}.Verify()
		assert.ErrorIs(t, err, ErrVerification)
	})

	t.Run("traces dispatched tasks", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewScheduler()
		s.Trace(&buf)

		require.True(t, s.Start())

		out := buf.String()
		require.NotEmpty(t, out)
		assert.True(t, strings.HasPrefix(out, "\n"))
		assert.Empty(t, strings.Trim(out, "0123456789\n"))
	})

	t.Run("reports a failing trace writer", func(t *testing.T) {
		s := NewScheduler()
		s.Trace(failingWriter{})

		res, err := s.Run()
		assert.ErrorIs(t, err, errWriteFailed)
		assert.Equal(t, ExpectedQueuePacketCount, res.QueuePacketCount)
	})
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestTasks(t *testing.T) {
	setup := func() (*Scheduler, *TaskControlBlock) {
		s := NewScheduler()
		s.CreateHandler(HandlerA, 2000, nil, StateWaiting)
		s.CreateHandler(HandlerB, 3000, nil, StateWaiting)
		s.CreateWorker(Worker, 1000, nil, StateRunning)

		s.currentTask = s.findTask(Worker)
		s.currentTaskIdentity = Worker
		return s, s.currentTask
	}

	t.Run("worker waits without work", func(t *testing.T) {
		s, worker := setup()

		next := worker.runTask(s)
		assert.Same(t, worker, next)
		assert.True(t, worker.IsWaiting())
	})

	t.Run("worker fills packets and alternates handlers", func(t *testing.T) {
		s, worker := setup()

		p := NewPacket(nil, Worker, WorkPacket)
		next := worker.task.Run(s, p)

		handlerB := s.findTask(HandlerB)
		assert.Same(t, handlerB, next, "a higher priority handler gets the packet and runs next")
		assert.Same(t, p, handlerB.Input())
		assert.Equal(t, Worker, p.Identity())
		assert.Equal(t, [DataSize]int{'A', 'B', 'C', 'D'}, p.Data())
		assert.Equal(t, 1, s.QueuePacketCount())

		q := NewPacket(nil, Worker, WorkPacket)
		worker.task.Run(s, q)
		assert.Same(t, q, s.findTask(HandlerA).Input())
		assert.Equal(t, [DataSize]int{'E', 'F', 'G', 'H'}, q.Data())
	})

	t.Run("idler releases devices and holds at the end", func(t *testing.T) {
		s := NewScheduler()
		s.CreateDevice(DeviceA, 4000, nil, StateWaiting)
		s.CreateDevice(DeviceB, 5000, nil, StateWaiting)
		s.CreateIdler(Idler, 0, nil, StateRunning)
		idler := s.findTask(Idler)
		s.currentTask = idler

		// control starts odd, so device B goes first
		assert.Same(t, s.findTask(DeviceB), idler.task.Run(s, nil))

		idler.task.(*idleTask).count = 1
		assert.Same(t, s.findTask(DeviceB), idler.task.Run(s, nil))
		assert.Equal(t, 1, s.HoldCount())
		assert.True(t, idler.Has(FlagTaskHolding))
	})

	t.Run("device holds a packet until released", func(t *testing.T) {
		s := NewScheduler()
		s.CreateHandler(HandlerA, 2000, nil, StateWaiting)
		s.CreateDevice(DeviceA, 4000, nil, StateWaiting)
		device := s.findTask(DeviceA)
		s.currentTask = device
		s.currentTaskIdentity = DeviceA

		p := NewPacket(nil, HandlerA, DevicePacket)
		next := device.task.Run(s, p)
		assert.Same(t, s.findTask(HandlerA), next)
		assert.True(t, device.Has(FlagTaskHolding))

		next = device.task.Run(s, nil)
		assert.Same(t, device, next)
		assert.Same(t, p, s.findTask(HandlerA).Input())
		assert.Equal(t, DeviceA, p.Identity())
	})
}

func BenchmarkStart(b *testing.B) {
	for b.Loop() {
		if !NewScheduler().Start() {
			b.Fatal("unexpected counters")
		}
	}
}
