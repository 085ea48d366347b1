package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should hold nothing")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set should mark action held")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should release all actions")
	}
}

func TestKeyLatchHoldsForWindow(t *testing.T) {
	l := NewKeyLatch(3)
	l.Press(ActionRight)

	for i := 0; i < 3; i++ {
		if !l.Frame().Has(ActionRight) {
			t.Fatalf("frame %d: expected Right held", i)
		}
	}
	if l.Frame().Has(ActionRight) {
		t.Error("Right should be released after the hold window")
	}
}

func TestKeyLatchRepeatRefreshes(t *testing.T) {
	l := NewKeyLatch(2)
	l.Press(ActionLeft)
	l.Frame()
	l.Press(ActionLeft) // auto-repeat
	l.Frame()
	if !l.Frame().Has(ActionLeft) {
		t.Error("repeat press should extend the hold")
	}
}

func TestKeyLatchOppositeDirections(t *testing.T) {
	l := NewKeyLatch(10)
	l.Press(ActionRight)
	l.Press(ActionLeft)

	f := l.Frame()
	if f.Has(ActionRight) {
		t.Error("pressing Left should release Right")
	}
	if !f.Has(ActionLeft) {
		t.Error("Left should be held")
	}
}

func TestKeyLatchTapAndRelease(t *testing.T) {
	l := NewKeyLatch(10)
	l.Tap(ActionAttack)
	l.Press(ActionFly)
	l.Release(ActionFly)

	f := l.Frame()
	if !f.Has(ActionAttack) {
		t.Error("tap should be visible for one frame")
	}
	if f.Has(ActionFly) {
		t.Error("released action should not be held")
	}
	if l.Frame().Has(ActionAttack) {
		t.Error("tap should last exactly one frame")
	}
}

func TestKeyLatchLastWriteWins(t *testing.T) {
	l := NewKeyLatch(5)
	l.Press(ActionJump)
	l.Release(ActionJump)
	l.Press(ActionJump)

	if !l.Frame().Has(ActionJump) {
		t.Error("the last write before the tick should win")
	}
}

func TestNewKeyLatchDefaultHold(t *testing.T) {
	l := NewKeyLatch(0)
	if l.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, expected %d", l.holdTicks, DefaultHoldTicks)
	}
}
