package session

import (
	"math"
	"testing"
	"time"
)

func TestFrameTimer_FirstTickOnlyArms(t *testing.T) {
	timer := &FrameTimer{}
	timer.Tick(time.Now())

	if timer.FrameMS != 0 || timer.FPS != 0 {
		t.Errorf("Expected no measurement from the first tick, got %.2fms %.2ffps", timer.FrameMS, timer.FPS)
	}
}

func TestFrameTimer_MeasuresInterval(t *testing.T) {
	timer := &FrameTimer{}
	base := time.Now()

	timer.Tick(base)
	timer.Tick(base.Add(10 * time.Millisecond))

	if math.Abs(timer.FrameMS-10) > 1e-9 {
		t.Errorf("Expected 10ms frame interval, got %.4f", timer.FrameMS)
	}
	if math.Abs(timer.FPS-100) > 1e-9 {
		t.Errorf("Expected 100 FPS, got %.4f", timer.FPS)
	}
}

func TestFrameTimer_ExponentialSmoothing(t *testing.T) {
	timer := &FrameTimer{}
	base := time.Now()

	timer.Tick(base)
	timer.Tick(base.Add(10 * time.Millisecond))

	// Smoothed value starts from zero: 0*0.9 + 10*0.1 = 1.
	if math.Abs(timer.SmoothedFrameMS-1.0) > 1e-9 {
		t.Errorf("Expected smoothed frame time 1.0ms, got %.4f", timer.SmoothedFrameMS)
	}

	timer.Tick(base.Add(20 * time.Millisecond))
	// 1*0.9 + 10*0.1 = 1.9.
	if math.Abs(timer.SmoothedFrameMS-1.9) > 1e-9 {
		t.Errorf("Expected smoothed frame time 1.9ms, got %.4f", timer.SmoothedFrameMS)
	}
}

func TestFrameTimer_ConvergesToSteadyState(t *testing.T) {
	timer := &FrameTimer{}
	now := time.Now()
	timer.Tick(now)

	for i := 0; i < 500; i++ {
		now = now.Add(5 * time.Millisecond)
		timer.Tick(now)
	}

	if math.Abs(timer.SmoothedFrameMS-5) > 0.01 {
		t.Errorf("Expected smoothed frame time to converge to 5ms, got %.4f", timer.SmoothedFrameMS)
	}
	if math.Abs(timer.SmoothedFPS-200) > 1 {
		t.Errorf("Expected smoothed FPS to converge to 200, got %.4f", timer.SmoothedFPS)
	}
}
