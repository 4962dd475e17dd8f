package vecmath

import "testing"

func TestColorArithmetic(t *testing.T) {
	a := NewColor(1, 2, 3)
	b := NewColor(4, 5, 6)
	if got, want := a.Add(b), NewColor(5, 7, 9); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Mul(b), NewColor(4, 10, 18); got != want {
		t.Errorf("Mul() = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), NewColor(2, 4, 6); got != want {
		t.Errorf("Scale(2) = %v, want %v", got, want)
	}
}

func TestColorIsBlack(t *testing.T) {
	if !ColorBlack.IsBlack() {
		t.Errorf("ColorBlack.IsBlack() = false, want true")
	}
	if NewColor(0, 0.001, 0).IsBlack() {
		t.Errorf("non-zero color reported as black")
	}
}

func TestColorChannelMinMaxAvg(t *testing.T) {
	c := NewColor(1, 5, 3)
	if got, want := c.ChannelMin(), 1.0; got != want {
		t.Errorf("ChannelMin() = %v, want %v", got, want)
	}
	if got, want := c.ChannelMax(), 5.0; got != want {
		t.Errorf("ChannelMax() = %v, want %v", got, want)
	}
	if got, want := c.ChannelAvg(), 3.0; got != want {
		t.Errorf("ChannelAvg() = %v, want %v", got, want)
	}
}
