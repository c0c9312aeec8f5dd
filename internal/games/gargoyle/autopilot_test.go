package gargoyle

import "testing"

func TestRunWithoutPilotFalls(t *testing.T) {
	e := NewEngine(WithSeed(3))
	e.Start(480, 800, 0, Events{})

	res := Run(e, 1000, nil)
	if !res.Over {
		t.Fatal("session should end without flapping")
	}
	if res.Flaps != 0 || res.Score != 0 {
		t.Errorf("result = %+v", res)
	}
	if res.Ticks >= 1000 {
		t.Errorf("ran %d ticks, expected an early stop", res.Ticks)
	}
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	e := NewEngine(WithSeed(3))
	e.Start(480, 800, 0, Events{})

	res := Run(e, 10, nil)
	if res.Ticks != 10 || res.Over {
		t.Errorf("result = %+v, want 10 ticks still active", res)
	}
}

func TestAutopilotScores(t *testing.T) {
	e := NewEngine(WithSeed(11))
	e.Start(480, 800, 0, Events{})

	res := Run(e, 2000, Autopilot(DefaultParams()))
	if res.Score == 0 {
		t.Errorf("autopilot never passed a pipe: %+v", res)
	}
	if res.Flaps == 0 {
		t.Error("autopilot never flapped")
	}
}

func TestFlapEvery(t *testing.T) {
	pilot := FlapEvery(5)
	for tick, want := range map[uint64]bool{0: true, 3: false, 5: true, 10: true, 11: false} {
		if got := pilot(Snapshot{Tick: tick}); got != want {
			t.Errorf("tick %d: flap = %v, want %v", tick, got, want)
		}
	}
	if FlapEvery(0)(Snapshot{Tick: 0}) {
		t.Error("FlapEvery(0) flapped")
	}
}

func TestRunInactiveEngine(t *testing.T) {
	e := NewEngine()
	res := Run(e, 100, FlapEvery(1))
	if res.Ticks != 0 || res.Flaps != 0 || !res.Over {
		t.Errorf("result = %+v", res)
	}
}
