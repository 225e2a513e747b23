package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/signhands"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []signhands.SignEvent
	SignEventType.Subscribe(world, func(w donburi.World, e signhands.SignEvent) {
		received = append(received, e)
	})

	at := time.Unix(10, 0)
	sink.EmitEvent(signhands.SignEvent{
		Kind:  signhands.SignStarted,
		Token: "HELLO",
		Sign:  "HELLO",
		At:    at,
	})
	sink.EmitEvent(signhands.SignEvent{Kind: signhands.QueueDrained, At: at.Add(time.Second)})

	// Events are queued until processed.
	SignEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != signhands.SignStarted || received[0].Sign != "HELLO" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != signhands.QueueDrained || received[1].Sign != "" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink signhands.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_AvatarPlayback(t *testing.T) {
	world := donburi.NewWorld()

	avatar, err := signhands.NewAvatar(signhands.NewJoint("root", signhands.Vec3{}), signhands.DefaultConfig())
	if err != nil {
		t.Fatalf("NewAvatar: %v", err)
	}
	avatar.SetEventSink(NewDonburiSink(world))

	var kinds []signhands.EventKind
	var signs []string
	SignEventType.Subscribe(world, func(w donburi.World, e signhands.SignEvent) {
		kinds = append(kinds, e.Kind)
		signs = append(signs, e.Sign)
	})

	avatar.Enqueue("HELLO", "CHAR_A")
	start := time.Unix(0, 0)
	for i := 0; i < 240; i++ {
		d := time.Duration(i) * time.Second / 60
		avatar.Update(d.Seconds(), start.Add(d))
	}
	events.ProcessAllEvents(world)

	wantKinds := []signhands.EventKind{
		signhands.SignStarted, signhands.SignFinished,
		signhands.SignStarted, signhands.SignFinished,
		signhands.QueueDrained,
	}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("kinds = %v, want %v", kinds, wantKinds)
	}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], wantKinds[i])
		}
	}
	if signs[0] != "HELLO" || signs[2] != "A" {
		t.Errorf("signs = %q", signs)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SignEventType.Subscribe(world, func(w donburi.World, e signhands.SignEvent) {
		count1++
	})
	SignEventType.Subscribe(world, func(w donburi.World, e signhands.SignEvent) {
		count2++
	})

	sink.EmitEvent(signhands.SignEvent{Kind: signhands.SignFinished})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
