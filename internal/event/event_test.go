package event

import "testing"

type recordingListener struct {
	received []Event
}

func (l *recordingListener) OnEvent(e Event) {
	l.received = append(l.received, e)
}

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	first := &recordingListener{}
	second := &recordingListener{}
	d.Subscribe(EnemyKilled, first)
	d.Subscribe(EnemyKilled, second)

	d.Dispatch(Event{Type: EnemyKilled, Data: KillPayload{ID: 7, Reward: 5}})

	for _, l := range []*recordingListener{first, second} {
		if len(l.received) != 1 {
			t.Fatalf("expected 1 event, got %d", len(l.received))
		}
		payload := l.received[0].Data.(KillPayload)
		if payload.ID != 7 || payload.Reward != 5 {
			t.Errorf("unexpected payload: %+v", payload)
		}
	}
}

func TestDispatchSkipsOtherEventTypes(t *testing.T) {
	d := NewDispatcher()
	l := &recordingListener{}
	d.Subscribe(EnemyKilled, l)

	d.Dispatch(Event{Type: EnemyEscaped, Data: EscapePayload{ID: 1, Damage: 2}})
	d.Dispatch(Event{Type: GameOver})

	if len(l.received) != 0 {
		t.Errorf("listener received %d events for foreign types", len(l.received))
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	l := &recordingListener{}
	d.Subscribe(WaveStarted, l)
	d.Dispatch(Event{Type: WaveStarted, Data: 1})

	d.Unsubscribe(WaveStarted, l)
	d.Dispatch(Event{Type: WaveStarted, Data: 2})

	if len(l.received) != 1 {
		t.Errorf("expected 1 event after unsubscribe, got %d", len(l.received))
	}
}
