package feed

// EnqueueRemediation records a missed card for later resurfacing. A concept
// already queued has its entry refreshed in place rather than duplicated:
// the card reference is replaced, the cooldown restarts from the current
// turn and the enqueue count grows. At capacity the oldest entry is evicted.
func (s *FeedState) EnqueueRemediation(entry QueueEntry, capacity int) {
	for i := range s.Queue {
		if s.Queue[i].ConceptID == entry.ConceptID {
			entry.EnqueueCount = s.Queue[i].EnqueueCount + 1
			s.Queue[i] = entry
			return
		}
	}
	entry.EnqueueCount = 1
	s.Queue = append(s.Queue, entry)
	if capacity > 0 && len(s.Queue) > capacity {
		s.Queue = s.Queue[len(s.Queue)-capacity:]
	}
}

// NextRemediation returns the oldest queue entry whose cooldown has elapsed
// by the given turn, with its index. ok is false when every entry is still
// cooling down or the queue is empty.
func (s *FeedState) NextRemediation(turn int) (QueueEntry, int, bool) {
	for i, entry := range s.Queue {
		if entry.CooldownUntil <= turn {
			return entry, i, true
		}
	}
	return QueueEntry{}, -1, false
}

func (s *FeedState) removeQueueAt(i int) {
	s.Queue = append(s.Queue[:i], s.Queue[i+1:]...)
	if len(s.Queue) == 0 {
		s.Queue = nil
	}
}
