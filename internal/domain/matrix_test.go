package domain

import "testing"

func TestDistanceMatrixLookupSymmetric(t *testing.T) {
	m := NewDistanceMatrix(ModeWalk, []TravelTime{
		{Origin: "a", Destination: "b", Minutes: 12},
		{Origin: "b", Destination: "c", Minutes: 20},
	})

	if got := m.Lookup("a", "b", 15); got != 12 {
		t.Fatalf("Lookup(a,b) = %v, want 12", got)
	}
	if got := m.Lookup("b", "a", 15); got != 12 {
		t.Fatalf("Lookup(b,a) = %v, want 12", got)
	}
	if m.Lookup("b", "c", 15) != m.Lookup("c", "b", 15) {
		t.Fatal("lookup is not symmetric")
	}
}

func TestDistanceMatrixLookupDefault(t *testing.T) {
	m := NewDistanceMatrix(ModeWalk, []TravelTime{
		{Origin: "a", Destination: "b", Minutes: 12},
	})

	if got := m.Lookup("a", "z", 15); got != 15 {
		t.Fatalf("missing pair = %v, want default 15", got)
	}
	if got := m.Lookup("a", "a", 15); got != 15 {
		t.Fatalf("self lookup = %v, want default 15", got)
	}
}

func TestDistanceMatrixEmpty(t *testing.T) {
	var m DistanceMatrix

	if got := m.Lookup("a", "b", 15); got != 15 {
		t.Fatalf("empty matrix lookup = %v, want default 15", got)
	}
}
