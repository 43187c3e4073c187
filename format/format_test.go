package format

import (
	"strings"
	"testing"

	"github.com/corvidnet/bitwire/bitfield"
)

type miniHeader struct {
	version uint64
	ihl     uint64
	id      uint64
}

func (h *miniHeader) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("version", 4, func() uint64 { return h.version }, func(v uint64) { h.version = v }),
		bitfield.NewUintField("ihl", 4, func() uint64 { return h.ihl }, func(v uint64) { h.ihl = v }),
		bitfield.NewUintField("id", 24, func() uint64 { return h.id }, func(v uint64) { h.id = v }),
	}
}
func (h *miniHeader) GroupKind() bitfield.GroupKind { return bitfield.Header }
func (h *miniHeader) Layer() int                    { return 3 }
func (h *miniHeader) DisplayName() string           { return "Mini Header" }

func TestRenderContainsFieldNames(t *testing.T) {
	h := &miniHeader{version: 4, ihl: 5, id: 7}
	out := Render(h, Options{})
	for _, want := range []string{"version", "ihl", "id", "Mini Header"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	h := &miniHeader{version: 4, ihl: 5, id: 7}
	_ = Render(h, Options{})
	if h.version != 4 || h.ihl != 5 || h.id != 7 {
		t.Fatalf("Render mutated the value: %+v", h)
	}
}

type payloadGroup struct {
	data []byte
}

func (g *payloadGroup) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewBytesField("data", func() []byte { return g.data }, func(b []byte) { g.data = b }),
	}
}
func (g *payloadGroup) GroupKind() bitfield.GroupKind { return bitfield.Basic }
func (g *payloadGroup) Layer() int                    { return 7 }
func (g *payloadGroup) DisplayName() string           { return "Payload" }

func TestRenderByteBlockModes(t *testing.T) {
	g := &payloadGroup{data: []byte("Hello World!")}

	elided := Render(g, Options{})
	if !strings.Contains(elided, "elided") {
		t.Fatalf("expected elision marker, got:\n%s", elided)
	}

	neat := Render(g, Options{NeatStrings: true})
	if !strings.Contains(neat, "48 65 6c") { // hex for "Hel"
		t.Fatalf("expected neat hex dump, got:\n%s", neat)
	}

	detailed := Render(g, Options{DetailedStrings: true})
	if !strings.Contains(detailed, "'H'") {
		t.Fatalf("expected detailed per-byte dump, got:\n%s", detailed)
	}
}
