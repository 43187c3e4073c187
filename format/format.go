package format

import (
	"fmt"
	"strings"

	"github.com/corvidnet/bitwire/bitfield"
)

// Options selects how byte-string fields are rendered.
type Options struct {
	// NeatStrings renders byte-string fields as a hex+ASCII dump of 16
	// bytes per row. Rows are not cut to a fixed 59-column window: a full
	// row is 73 columns wide.
	NeatStrings bool
	// DetailedStrings renders byte-string fields as a per-byte dump with
	// binary, hex, and character annotation. Takes precedence over
	// NeatStrings when both are set.
	DetailedStrings bool
}

const rulerTop = " 0                   1                   2                   3"
const rulerBits = " 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1"

var border = "+" + strings.Repeat("-+", 32)

// Render returns an IETF-style annotated diagram of g. It does not
// mutate g.
func Render(g bitfield.Group, opts Options) string {
	var b strings.Builder
	renderGroup(&b, g, opts, 0)
	return b.String()
}

type bitLeaf struct {
	name  string
	width int
}

func renderGroup(b *strings.Builder, g bitfield.Group, opts Options, depth int) {
	boxed := g.GroupKind() != bitfield.Basic && g.GroupKind() != bitfield.Option
	if boxed {
		writeBoxedTitle(b, g.DisplayName())
	}

	var row []bitLeaf
	drewRuler := false
	flush := func() {
		if len(row) == 0 {
			return
		}
		if !drewRuler {
			fmt.Fprintln(b, rulerTop)
			fmt.Fprintln(b, rulerBits)
			drewRuler = true
		}
		writeRow(b, row)
		row = nil
	}

	for _, v := range bitfield.Fields(g) {
		switch v.Kind {
		case bitfield.KindUint, bitfield.KindBool:
			row = appendLeaf(b, &drewRuler, row, bitLeaf{v.Name, v.Width})
		case bitfield.KindNested, bitfield.KindVariant:
			flush()
			if sub := v.Field.Group(); sub != nil {
				renderGroup(b, sub, opts, depth+1)
			}
		case bitfield.KindOptional:
			if v.Field.Present != nil && v.Field.Present() {
				flush()
				if sub := v.Field.Group(); sub != nil {
					renderGroup(b, sub, opts, depth+1)
				}
			}
		case bitfield.KindBytes:
			flush()
			writeByteBlock(b, v.Name, v.Field.GetBytes(), opts)
		}
	}
	flush()

	if boxed {
		fmt.Fprintln(b, border)
	}
	if depth == 0 {
		fmt.Fprintln(b, "--- end of diagram ---")
	}
}

// appendLeaf packs width-bit leaves into 32-bit rows, splitting a leaf
// across rows when it doesn't fit in the remainder of the current one,
// and flushes a completed row immediately.
func appendLeaf(b *strings.Builder, drewRuler *bool, row []bitLeaf, lf bitLeaf) []bitLeaf {
	col := 0
	for _, r := range row {
		col += r.width
	}
	for lf.width > 0 {
		avail := 32 - col
		take := lf.width
		if take > avail {
			take = avail
		}
		row = append(row, bitLeaf{lf.name, take})
		col += take
		lf.width -= take
		if col == 32 {
			if !*drewRuler {
				fmt.Fprintln(b, rulerTop)
				fmt.Fprintln(b, rulerBits)
				*drewRuler = true
			}
			writeRow(b, row)
			row = nil
			col = 0
		}
	}
	return row
}

func writeRow(b *strings.Builder, row []bitLeaf) {
	fmt.Fprintln(b, border)
	var line strings.Builder
	line.WriteByte('|')
	for _, lf := range row {
		cellWidth := 2*lf.width - 1
		if cellWidth < 1 {
			cellWidth = 1
		}
		line.WriteString(center(lf.name, cellWidth))
		line.WriteByte('|')
	}
	fmt.Fprintln(b, line.String())
}

func center(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	pad := width - len(s)
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func writeBoxedTitle(b *strings.Builder, name string) {
	inner := len(name) + 2
	fmt.Fprintln(b, "+"+strings.Repeat("-", inner)+"+")
	fmt.Fprintf(b, "| %s |\n", name)
	fmt.Fprintln(b, "+"+strings.Repeat("-", inner)+"+")
}

// writeByteBlock renders a byte-string field's titled dump. It reads
// only from the slice the accessor hands back; it never writes to it.
func writeByteBlock(b *strings.Builder, name string, data []byte, opts Options) {
	fmt.Fprintf(b, "[ %s : %d bytes ]\n", name, len(data))
	switch {
	case opts.DetailedStrings:
		writeDetailedDump(b, data)
	case opts.NeatStrings:
		writeNeatDump(b, data)
	default:
		fmt.Fprintf(b, "  <%d bytes elided>\n", len(data))
	}
}

// writeNeatDump renders a hex+ASCII dump, 16 bytes per row: a 4-digit
// offset, the hex bytes padded to 47 columns, and the characters, 73
// columns in all for a full row.
func writeNeatDump(b *strings.Builder, data []byte) {
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		var hex strings.Builder
		var ascii strings.Builder
		for i, c := range chunk {
			if i > 0 {
				hex.WriteByte(' ')
			}
			fmt.Fprintf(&hex, "%02x", c)
			if c >= 0x20 && c < 0x7f {
				ascii.WriteByte(c)
			} else {
				ascii.WriteByte('.')
			}
		}
		fmt.Fprintf(b, "  %04x  %-47s  %s\n", off, hex.String(), ascii.String())
	}
}

// writeDetailedDump renders one line per byte: offset, binary, hex, and
// character annotation.
func writeDetailedDump(b *strings.Builder, data []byte) {
	for i, c := range data {
		ch := "."
		if c >= 0x20 && c < 0x7f {
			ch = string(c)
		}
		fmt.Fprintf(b, "  %04x  %08b  0x%02x  '%s'\n", i, c, c, ch)
	}
}
