package richards

import "fmt"

// Task is the behaviour of a task. Run receives the packet delivered for
// this turn, nil if none, and returns the task to run next.
type Task interface {
	Run(s *Scheduler, work *Packet) *TaskControlBlock
}

// TaskControlBlock is a task's identity, priority, input queue and
// behaviour. Blocks form an intrusive list through link, newest first.
type TaskControlBlock struct {
	State

	link     *TaskControlBlock
	identity TaskID
	priority int
	input    *Packet
	task     Task
}

func newTaskControlBlock(link *TaskControlBlock, identity TaskID, priority int, work *Packet, state State, task Task) *TaskControlBlock {
	return &TaskControlBlock{
		State:    state,
		link:     link,
		identity: identity,
		priority: priority,
		input:    work,
		task:     task,
	}
}

func (t *TaskControlBlock) Identity() TaskID { return t.identity }

func (t *TaskControlBlock) Priority() int { return t.priority }

// Link returns the next block of the task list.
func (t *TaskControlBlock) Link() *TaskControlBlock { return t.link }

// Input returns the head of the input queue.
func (t *TaskControlBlock) Input() *Packet { return t.input }

// addInputAndCheckPriority queues packet and returns the task that should
// run next: t if it just got work and outranks old, otherwise old.
func (t *TaskControlBlock) addInputAndCheckPriority(packet *Packet, old *TaskControlBlock) *TaskControlBlock {
	if t.input == nil {
		t.input = packet
		t.set(FlagPacketPending, true)
		if t.priority > old.priority {
			return t
		}
	} else {
		t.input = appendPacket(packet, t.input)
	}

	return old
}

// runTask delivers the head of the input queue, if the task was waiting for
// it, and runs the behaviour.
func (t *TaskControlBlock) runTask(s *Scheduler) *TaskControlBlock {
	var message *Packet

	if t.IsWaitingWithPacket() {
		if t.input == nil {
			panic(fatal{fmt.Errorf("%w: %s has a packet pending and none queued", ErrEmptyQueue, t.identity)})
		}

		message = t.input
		t.input = message.link
		if t.input == nil {
			t.State = StateRunning
		} else {
			t.State = StatePacketPending
		}
	}

	return t.task.Run(s, message)
}
