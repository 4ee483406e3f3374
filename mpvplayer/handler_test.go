package mpvplayer

import (
	"sync"
	"testing"

	"github.com/neuralllamas/focusflow/logger"
	"github.com/neuralllamas/focusflow/remote"
	"github.com/stretchr/testify/assert"
)

type playbackCall struct {
	trackId string
	paused  bool
}

type recordingConsumer struct {
	events []UiEvent
}

func (c *recordingConsumer) SendEvent(event UiEvent) {
	c.events = append(c.events, event)
}

func newTestPlayer() (*Player, *[]playbackCall) {
	p := &Player{logger: logger.Init()}
	calls := &[]playbackCall{}
	p.AddPlaybackListener(func(trackId string, paused bool) {
		*calls = append(*calls, playbackCall{trackId, paused})
	})
	return p, calls
}

func TestPlaybackListener(t *testing.T) {
	song := QueueItem{Id: "abc123", Title: "Song", Artist: "Artist", Duration: 180}

	testCases := []struct {
		name     string
		event    UiEventType
		data     interface{}
		expected []playbackCall
	}{
		{name: "playing", event: EventPlaying, data: song, expected: []playbackCall{{"abc123", false}}},
		{name: "unpaused", event: EventUnpaused, data: song, expected: []playbackCall{{"abc123", false}}},
		{name: "paused", event: EventPaused, data: song, expected: []playbackCall{{"abc123", true}}},
		{name: "stopped", event: EventStopped, data: nil, expected: nil},
		{name: "status", event: EventStatus, data: StatusData{Volume: 50}, expected: nil},
		{name: "empty queue", event: EventPaused, data: QueueItem{}, expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, calls := newTestPlayer()
			p.sendGuiDataEvent(tc.event, tc.data)
			assert.Equal(t, tc.expected, *calls)
		})
	}
}

func TestStateCallbacks(t *testing.T) {
	p, _ := newTestPlayer()
	consumer := &recordingConsumer{}
	p.RegisterEventConsumer(consumer)

	var states []string
	p.OnPlaying(func() { states = append(states, "playing") })
	p.OnPaused(func() { states = append(states, "paused") })
	p.OnStopped(func() { states = append(states, "stopped") })

	var titles []string
	p.OnSongChange(func(track remote.TrackInterface) { titles = append(titles, track.GetTitle()) })

	song := QueueItem{Id: "s1", Title: "One"}
	p.sendGuiDataEvent(EventPlaying, song)
	p.sendGuiDataEvent(EventPaused, song)
	p.sendGuiEvent(EventStopped)

	assert.Equal(t, []string{"playing", "paused", "stopped"}, states)
	assert.Equal(t, []string{"One", "One"}, titles)
	assert.Len(t, consumer.events, 3)
	assert.Equal(t, EventStopped, consumer.events[2].Type)
}

func TestQueueCopy(t *testing.T) {
	p, _ := newTestPlayer()
	p.AddToQueue(&QueueItem{Id: "a"})
	p.AddToQueue(&QueueItem{Id: "b"})

	cpy := p.GetQueueCopy()
	cpy[0].Id = "changed"

	assert.Equal(t, "a", p.currentSong().Id)
	assert.Len(t, p.GetQueueCopy(), 2)
}

func TestQueueItemTrackInterface(t *testing.T) {
	var nilItem *QueueItem
	assert.False(t, nilItem.IsValid())
	assert.Equal(t, "", nilItem.GetTitle())

	item := &QueueItem{Id: "x", Title: "T", Artist: "A", Duration: 42}
	assert.True(t, item.IsValid())
	assert.Equal(t, "A", item.GetArtist())
	assert.Equal(t, 42, item.GetDuration())
}

func TestEndFileOnLastTrackStops(t *testing.T) {
	p, _ := newTestPlayer()
	consumer := &recordingConsumer{}
	p.RegisterEventConsumer(consumer)
	p.AddToQueue(&QueueItem{Id: "last"})

	p.handleEndFile()

	assert.True(t, p.stopped.Load())
	assert.Empty(t, p.GetQueueCopy())
	assert.Len(t, consumer.events, 1)
	assert.Equal(t, EventStopped, consumer.events[0].Type)
}

func TestEndFileIgnoredWhileReplacing(t *testing.T) {
	p, _ := newTestPlayer()
	consumer := &recordingConsumer{}
	p.RegisterEventConsumer(consumer)
	p.AddToQueue(&QueueItem{Id: "a"})
	p.replaceInProgress.Store(true)

	p.handleEndFile()

	assert.Len(t, p.GetQueueCopy(), 1)
	assert.Empty(t, consumer.events)
}

func TestEndFileAfterUserStopKeepsQueue(t *testing.T) {
	p, _ := newTestPlayer()
	consumer := &recordingConsumer{}
	p.RegisterEventConsumer(consumer)
	p.AddToQueue(&QueueItem{Id: "a"})
	p.AddToQueue(&QueueItem{Id: "b"})
	p.stopped.Store(true)

	p.handleEndFile()

	assert.Len(t, p.GetQueueCopy(), 2)
	assert.Len(t, consumer.events, 1)
	assert.Equal(t, EventStopped, consumer.events[0].Type)
}

func TestAdvanceQueue(t *testing.T) {
	p, _ := newTestPlayer()
	p.AddToQueue(&QueueItem{Id: "a"})
	p.AddToQueue(&QueueItem{Id: "b"})

	next, ok := p.advanceQueue()
	assert.True(t, ok)
	assert.Equal(t, "b", next.Id)

	_, ok = p.advanceQueue()
	assert.False(t, ok)
	_, ok = p.advanceQueue()
	assert.False(t, ok)
}

// run with -race: the state flags and queue are shared between the caller's
// goroutine and the mpv event loop
func TestStateSharedWithEventLoop(t *testing.T) {
	p, _ := newTestPlayer()
	p.replaceInProgress.Store(true)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			p.handleEndFile()
			p.advanceQueue()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			p.replaceInProgress.Store(true)
			p.stopped.Store(i%2 == 0)
			p.AddToQueue(&QueueItem{Id: "x"})
			_ = p.GetQueueCopy()
		}
	}()
	wg.Wait()
}
