package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/geom"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndListScenes(t *testing.T) {
	store := openTestStore(t)

	shapes := []ShapeRecord{
		{Kind: KindLine, Color: "#ff0000", Points: "0,0;10,5"},
		{Kind: KindCircle, Color: "#000000", Points: "20,20;20,8"},
		{Kind: KindPolygon, Color: "#ff00ff", Points: "0,0;10,0;10,10;0,10"},
	}

	id, err := store.SaveScene("first", shapes)
	if err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveScene() returned zero ID")
	}

	if _, err := store.SaveScene("second", shapes[:1]); err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}

	entries, err := store.ListScenes()
	if err != nil {
		t.Fatalf("ListScenes() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(entries))
	}

	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Name] = e.ShapeCount
	}
	if counts["first"] != 3 {
		t.Errorf("scene 'first' has %d shapes, expected 3", counts["first"])
	}
	if counts["second"] != 1 {
		t.Errorf("scene 'second' has %d shapes, expected 1", counts["second"])
	}
}

func TestStoreSceneShapesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	saved := []ShapeRecord{
		{Kind: KindEllipse, Color: "#0000ff", Points: "40,30;52,36"},
		{Kind: KindDot, Color: "#ffffff", Points: "1,2"},
	}
	id, err := store.SaveScene("roundtrip", saved)
	if err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}

	loaded, err := store.SceneShapes(id)
	if err != nil {
		t.Fatalf("SceneShapes() failed: %v", err)
	}
	if len(loaded) != len(saved) {
		t.Fatalf("loaded %d shapes, expected %d", len(loaded), len(saved))
	}
	for i, sh := range loaded {
		if sh != saved[i] {
			t.Errorf("shape %d = %+v, expected %+v (order must be preserved)", i, sh, saved[i])
		}
	}
}

func TestStoreSceneByName(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScene("findme", []ShapeRecord{{Kind: KindDot, Color: "#ffffff", Points: "0,0"}}); err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}

	entry, err := store.SceneByName("findme")
	if err != nil {
		t.Fatalf("SceneByName() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("SceneByName() returned nil for an existing scene")
	}
	if entry.Name != "findme" || entry.ShapeCount != 1 {
		t.Errorf("entry = %+v", entry)
	}

	missing, err := store.SceneByName("ghost")
	if err != nil {
		t.Fatalf("SceneByName() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("SceneByName() for missing scene = %+v, expected nil", missing)
	}
}

func TestStoreDuplicateNameRejected(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScene("dup", nil); err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if _, err := store.SaveScene("dup", nil); err == nil {
		t.Error("saving a duplicate scene name succeeded, expected error")
	}
}

func TestStoreDeleteScene(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScene("doomed", []ShapeRecord{{Kind: KindDot, Color: "#ffffff", Points: "0,0"}})
	if err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}

	if err := store.DeleteScene(id); err != nil {
		t.Fatalf("DeleteScene() failed: %v", err)
	}

	entries, err := store.ListScenes()
	if err != nil {
		t.Fatalf("ListScenes() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no scenes after delete, got %d", len(entries))
	}

	shapes, err := store.SceneShapes(id)
	if err != nil {
		t.Fatalf("SceneShapes() failed: %v", err)
	}
	if len(shapes) != 0 {
		t.Errorf("expected no orphan shapes after delete, got %d", len(shapes))
	}
}

func TestPointsRoundTrip(t *testing.T) {
	pts := []geom.Point{geom.P(0, 0), geom.P(10.5, -3), geom.P(0.25, 100)}

	encoded := FormatPoints(pts)
	decoded, err := ParsePoints(encoded)
	if err != nil {
		t.Fatalf("ParsePoints(%q) failed: %v", encoded, err)
	}
	if len(decoded) != len(pts) {
		t.Fatalf("decoded %d points, expected %d", len(decoded), len(pts))
	}
	for i, p := range decoded {
		if p != pts[i] {
			t.Errorf("point %d = %v, expected %v", i, p, pts[i])
		}
	}
}

func TestParsePointsInvalid(t *testing.T) {
	for _, s := range []string{"1", "a,b", "1,2;x"} {
		if _, err := ParsePoints(s); err == nil {
			t.Errorf("ParsePoints(%q) succeeded, expected error", s)
		}
	}
}
