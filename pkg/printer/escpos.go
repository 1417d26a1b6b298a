package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS control bytes.
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment values for SetAlign.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size values for SetFontSize.
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
	FontWide   = 0x10
	FontTall   = 0x01
)

// Document accumulates an ESC/POS byte stream for one ticket. Layout
// helpers work in character columns: 32 for 58mm paper, 48 for 80mm.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates a ticket document for the given paper width in
// characters and initializes the printer state.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Init emits ESC @, resetting the printer to its power-on state.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed advances the paper one line.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines advances the paper n lines.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign selects AlignLeft, AlignCenter or AlignRight for following text.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold toggles emphasized printing.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize selects one of the Font* character sizes.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text prints a line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF prints a formatted line.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width rule of the given character.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a label flush left and its value flush right on one
// line, e.g. "Subtotal:                $170.00". Columns are counted in
// runes; backend names are not restricted to ASCII.
func (d *Document) KeyValue(key, value string) *Document {
	pad := d.width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// ItemLine prints "<qty>x <name>" with the amount flush right. Return
// lines carry a negative qty. Names too long for the paper are truncated
// on a rune boundary so the amount column never wraps.
func (d *Document) ItemLine(qty int, name, amount string) *Document {
	prefix := fmt.Sprintf("%dx ", qty)
	maxName := d.width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(amount) - 1
	if maxName > 0 && utf8.RuneCountInString(name) > maxName {
		name = string([]rune(name)[:maxName])
	}

	line := prefix + name
	pad := d.width - utf8.RuneCountInString(line) - utf8.RuneCountInString(amount)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(line)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(amount)
	d.buf.WriteByte(LF)
	return d
}

// QRCode prints a QR symbol via the GS ( k function set: model 2, module
// size 4, error correction L.
func (d *Document) QRCode(content string) *Document {
	if content == "" {
		return d
	}

	d.buf.Write([]byte{GS, '(', 'k', 4, 0, 49, 65, 50, 0})
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 67, 4})
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 69, 48})

	// Store the payload in the symbol buffer, then print it.
	n := len(content) + 3
	d.buf.Write([]byte{GS, '(', 'k', byte(n & 0xFF), byte(n >> 8), 49, 80, 48})
	d.buf.WriteString(content)
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 81, 48})
	d.buf.WriteByte(LF)

	return d
}

// Cut performs a full paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut performs a partial cut, leaving the ticket attached at one
// point so it tears off cleanly.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset clears the stream and reinitializes the printer state.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}
