package proctitle

import (
	"os"
	"testing"
)

func TestSet(t *testing.T) {
	if err := Set("  "); err == nil {
		t.Fatal("Set accepted an empty title")
	}

	saved := os.Args[0]
	t.Cleanup(func() { os.Args[0] = saved })
	if err := Set("serve"); err != nil {
		t.Fatal(err)
	}
	if os.Args[0] != "folio-serve" {
		t.Fatalf("os.Args[0] = %q", os.Args[0])
	}
}
