package geo

import (
	"math"
	"testing"
)

const (
	dublinLat = 53.3498
	dublinLng = -6.2603
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	if d := Distance(dublinLat, dublinLng, dublinLat, dublinLng); d != 0 {
		t.Errorf("Distance(A,A) = %f; want 0", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Distance(dublinLat, dublinLng, 53.4597, -6.2181)
	b := Distance(53.4597, -6.2181, dublinLat, dublinLng)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Distance not symmetric: %f vs %f", a, b)
	}
}

func TestDistanceKnownSeparation(t *testing.T) {
	// Dublin city centre to Bray is roughly 19-20 km.
	d := Distance(dublinLat, dublinLng, 53.2028, -6.0986)
	if d < 15 || d > 25 {
		t.Errorf("Dublin-Bray distance = %f; want roughly 19km", d)
	}
}

func TestGenerateGridWithinRadius(t *testing.T) {
	points := GenerateGrid(dublinLat, dublinLng, 30, 5)
	if len(points) == 0 {
		t.Fatal("expected at least one grid point")
	}
	for _, p := range points {
		d := Distance(dublinLat, dublinLng, p.Lat, p.Lng)
		if d > 30 {
			t.Errorf("grid point %s is %.2fkm from center; want <= 30", p.Name, d)
		}
		if math.Abs(d-p.DistanceFromCenterKm) > 1e-9 {
			t.Errorf("grid point %s carries distance %.4f; recomputed %.4f", p.Name, p.DistanceFromCenterKm, d)
		}
	}
}

func TestGenerateGridCornersExcluded(t *testing.T) {
	points := GenerateGrid(dublinLat, dublinLng, 30, 5)
	if len(points) >= 25 {
		t.Errorf("got %d points; corners should be excluded (< 25)", len(points))
	}
	if len(points) == 0 {
		t.Error("got 0 points; want > 0")
	}
	// The bounding box spans the radius, so only the inner 3x3 survives.
	if len(points) != 9 {
		t.Errorf("got %d points; want 9", len(points))
	}
}

func TestGenerateGridDeterministic(t *testing.T) {
	a := GenerateGrid(dublinLat, dublinLng, 30, 5)
	b := GenerateGrid(dublinLat, dublinLng, 30, 5)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateGridDegenerateSize(t *testing.T) {
	if points := GenerateGrid(dublinLat, dublinLng, 30, 1); points != nil {
		t.Errorf("gridSize 1 should yield no points, got %d", len(points))
	}
}
