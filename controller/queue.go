// This file is part of GopherRover.
//
// GopherRover is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherRover is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherRover.  If not, see <https://www.gnu.org/licenses/>.

package controller

import (
	"sync"
)

// Queue is an unbounded FIFO of controller events. Single producer (the
// capture loop), single consumer (the drive loop).
//
// A native channel is not used because Put() must never block the capture
// loop, no matter how slowly the consumer is draining.
type Queue struct {
	crit    sync.Mutex
	more    *sync.Cond
	entries []Data
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	q := &Queue{}
	q.more = sync.NewCond(&q.crit)
	return q
}

// Put adds an event to the back of the queue. Never blocks.
func (q *Queue) Put(d Data) {
	q.crit.Lock()
	defer q.crit.Unlock()

	q.entries = append(q.entries, d)
	q.more.Signal()
}

// Get returns the event at the front of the queue, blocking until one is
// available.
func (q *Queue) Get() Data {
	q.crit.Lock()
	defer q.crit.Unlock()

	for len(q.entries) == 0 {
		q.more.Wait()
	}

	d := q.entries[0]
	q.entries = q.entries[1:]
	return d
}

// GetNoWait returns the event at the front of the queue or, if the queue is
// empty, a Data value tagged EventEmpty. Never blocks.
func (q *Queue) GetNoWait() Data {
	q.crit.Lock()
	defer q.crit.Unlock()

	if len(q.entries) == 0 {
		return Data{Event: EventEmpty}
	}

	d := q.entries[0]
	q.entries = q.entries[1:]
	return d
}

// Clear discards all queued events. Used on disconnection so that stale
// input events never reach the drive loop after the Disconnected event.
func (q *Queue) Clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.entries = q.entries[:0]
}
