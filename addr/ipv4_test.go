package addr

import (
	"errors"
	"testing"

	"github.com/corvidnet/bitwire/bitfield"
)

func TestParseIPv4(t *testing.T) {
	cases := []struct {
		in   string
		want IPv4
	}{
		{"192.168.1.1", NewIPv4(192, 168, 1, 1)},
		{"10.0.0.1/24", NewIPv4(10, 0, 0, 1)},
		{"10.0.0.1:8080", NewIPv4(10, 0, 0, 1)},
		{"10.0.0.1/24:8080", NewIPv4(10, 0, 0, 1)},
	}
	for _, c := range cases {
		got, err := ParseIPv4(c.in)
		if err != nil {
			t.Fatalf("ParseIPv4(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseIPv4(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseIPv4Invalid(t *testing.T) {
	for _, in := range []string{"1.2.3", "1.2.3.4.5", "1.2.3.256", "a.b.c.d"} {
		_, err := ParseIPv4(in)
		if !errors.Is(err, ErrInvalidIPv4String) {
			t.Fatalf("ParseIPv4(%q) error = %v, want ErrInvalidIPv4String", in, err)
		}
	}
}

func TestSliceFromStrCIDR(t *testing.T) {
	got, err := SliceFromStr("192.168.1.0/30")
	if err != nil {
		t.Fatalf("SliceFromStr error: %v", err)
	}
	want := []IPv4{
		NewIPv4(192, 168, 1, 0),
		NewIPv4(192, 168, 1, 1),
		NewIPv4(192, 168, 1, 2),
		NewIPv4(192, 168, 1, 3),
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSliceFromStrCIDRTooLarge(t *testing.T) {
	_, err := SliceFromStr("10.0.0.0/32")
	if !errors.Is(err, ErrCIDRTooLarge) {
		t.Fatalf("error = %v, want ErrCIDRTooLarge", err)
	}
}

func TestSliceFromStrOctetRange(t *testing.T) {
	got, err := SliceFromStr("10.1-3.0.5")
	if err != nil {
		t.Fatalf("SliceFromStr error: %v", err)
	}
	want := []IPv4{
		NewIPv4(10, 1, 0, 5),
		NewIPv4(10, 2, 0, 5),
		NewIPv4(10, 3, 0, 5),
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSliceFromStrList(t *testing.T) {
	got, err := SliceFromStr("10.0.0.1,10.0.0.2,10.0.0.3")
	if err != nil {
		t.Fatalf("SliceFromStr error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
}

func TestIPv4SchemaRoundTrip(t *testing.T) {
	v := NewIPv4(203, 0, 113, 7)
	data, err := bitfield.AsNetBytes(&v)
	if err != nil {
		t.Fatalf("AsNetBytes error: %v", err)
	}
	want := []byte{203, 0, 113, 7}
	if !bytesEqual(data, want) {
		t.Fatalf("AsNetBytes = %v, want %v", data, want)
	}

	var back IPv4
	if err := bitfield.FromNetBytes(&back, data); err != nil {
		t.Fatalf("FromNetBytes error: %v", err)
	}
	if back != v {
		t.Fatalf("round trip = %v, want %v", back, v)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
