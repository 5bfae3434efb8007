package embedded

import (
	"testing"
	"testing/fstest"
)

func TestUninitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("nil fs should leave the package uninitialized")
	}
	if _, err := ReadFile("data/game.yaml"); err == nil {
		t.Error("ReadFile should fail before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/game.yaml": {Data: []byte("scrollSpeed: 120\n")},
	})
	t.Cleanup(func() { Init(nil) })

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain path", "data/game.yaml", "scrollSpeed: 120\n", false},
		{"dot prefix", "./data/game.yaml", "scrollSpeed: 120\n", false},
		{"missing file", "data/missing.yaml", "", true},
		{"wrong prefix", "assets/game.yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	if !Exists("data/game.yaml") || Exists("data/nope.yaml") {
		t.Error("Exists returned wrong result")
	}
}
