package apply

import (
	"strings"
	"testing"
)

func TestChecksum(t *testing.T) {
	script := "DROP TABLE IF EXISTS exercises CASCADE;\n"

	sum := Checksum(script)
	if len(sum) != 64 {
		t.Fatalf("Checksum() length = %d, want 64 hex chars", len(sum))
	}
	if sum != strings.ToLower(sum) {
		t.Error("Checksum() should be lowercase hex")
	}

	if Checksum(script) != sum {
		t.Error("Checksum() is not stable for identical content")
	}
	if Checksum(script+" ") == sum {
		t.Error("Checksum() should differ for different content")
	}
}
