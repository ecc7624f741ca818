package config

import "testing"

func TestRenderDistanceClampedToRange(t *testing.T) {
	SetRenderDistance(1)
	if got := GetRenderDistance(); got != 2 {
		t.Fatalf("expected render distance clamped to 2, got %d", got)
	}

	SetRenderDistance(100)
	if got := GetRenderDistance(); got != 32 {
		t.Fatalf("expected render distance clamped to 32, got %d", got)
	}

	SetRenderDistance(10)
	if got := GetRenderDistance(); got != 10 {
		t.Fatalf("expected render distance 10, got %d", got)
	}
}

func TestChunkRadiiDeriveFromRenderDistance(t *testing.T) {
	SetRenderDistance(6)
	if got := GetChunkLoadRadius(); got != 6 {
		t.Fatalf("expected load radius 6, got %d", got)
	}
	if got := GetChunkEvictRadius(); got != 12 {
		t.Fatalf("expected evict radius 12, got %d", got)
	}
}

func TestWorldGenSettingsRoundTrip(t *testing.T) {
	SetWorldSeed(42)
	if got := GetWorldSeed(); got != 42 {
		t.Fatalf("expected seed 42, got %d", got)
	}

	SetSeaLevel(70)
	if got := GetSeaLevel(); got != 70 {
		t.Fatalf("expected sea level 70, got %d", got)
	}

	SetCaves(false)
	if GetCaves() {
		t.Fatalf("expected caves disabled")
	}
	SetCaves(true)
	if !GetCaves() {
		t.Fatalf("expected caves enabled")
	}
}
