package render

import "sync"

// Job runs renders on a background goroutine so the caller can paint a
// busy indicator while a frame is in flight. Each Begin supersedes any
// unfinished render; a superseded result is dropped on completion.
type Job struct {
	mu      sync.Mutex
	seq     int
	running bool
	result  *Frame
}

// Begin starts computing a frame in the background. Safe to call while a
// previous render is still running.
func (j *Job) Begin(s Settings, width, height int) {
	j.mu.Lock()
	j.seq++
	seq := j.seq
	j.running = true
	j.mu.Unlock()

	go func() {
		frame := Render(s, width, height)
		j.mu.Lock()
		defer j.mu.Unlock()
		if seq != j.seq {
			return // a newer render superseded this one
		}
		j.result = frame
		j.running = false
	}()
}

// Busy reports whether a render is in flight.
func (j *Job) Busy() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

// Take returns the finished frame exactly once. It returns nil while a
// render is still running and nil again after the frame was taken.
func (j *Job) Take() *Frame {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running || j.result == nil {
		return nil
	}
	f := j.result
	j.result = nil
	return f
}
