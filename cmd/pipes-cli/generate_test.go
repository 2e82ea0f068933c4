package main

import "testing"

func TestCheckSize(t *testing.T) {
	cases := []struct {
		n   int
		err bool
	}{
		{1, true},
		{2, false},
		{25, false},
		{26, true},
	}
	for _, c := range cases {
		if err := checkSize(c.n); (err != nil) != c.err {
			t.Errorf("checkSize(%d): got err=%v, expected err=%v", c.n, err, c.err)
		}
	}
}

func TestRunGenerateBadSize(t *testing.T) {
	generateSize = 1
	generateCount = 1
	if err := runGenerate(nil, nil); err == nil {
		t.Errorf("Expected an error for an out-of-range size")
	}
}

func TestRunGenerate(t *testing.T) {
	generateSize = 3
	generateCount = 1
	generateRandomize = true
	generateRender = true
	if err := runGenerate(nil, nil); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}
}
