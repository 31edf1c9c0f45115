package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	werrors "github.com/wippyai/widestr/errors"
	"github.com/wippyai/widestr/wcstr"
	"github.com/wippyai/widestr/widechar"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a file of raw code units")
		hexUnits    = flag.String("hex", "", "Code units as hex (e.g. \"D834 DD1E 0000\")")
		width       = flag.Int("width", 16, "Code unit width in bits (16 or 32)")
		endian      = flag.String("endian", "little", "Byte order for -in files (little or big)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(*hexUnits, *width); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *inFile == "" && *hexUnits == "" {
		fmt.Fprintln(os.Stderr, "Usage: wideinspect -hex \"D834 DD1E 0000\" [-width 16|32]")
		fmt.Fprintln(os.Stderr, "       wideinspect -in <file> [-width 16|32] [-endian little|big]")
		fmt.Fprintln(os.Stderr, "       wideinspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(os.Stdout, *inFile, *hexUnits, *width, *endian); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// styles carries the output styling for a report. All styles are zero
// values when the destination is not a terminal, so piped output stays
// plain text.
type styles struct {
	header lipgloss.Style
	scalar lipgloss.Style
	bad    lipgloss.Style
	note   lipgloss.Style
}

func newStyles(styled bool) styles {
	if !styled {
		return styles{}
	}
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB")),
		scalar: lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		note:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func run(w io.Writer, inFile, hexUnits string, width int, endian string) error {
	if width != 16 && width != 32 {
		return fmt.Errorf("unsupported width %d: want 16 or 32", width)
	}

	order, err := byteOrder(endian)
	if err != nil {
		return err
	}

	var data []byte
	if inFile != "" {
		data, err = os.ReadFile(inFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
	}

	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	st := newStyles(styled)

	if width == 16 {
		units, err := loadUnits[uint16](data, hexUnits, order)
		if err != nil {
			return err
		}
		report(w, st, units)
		return nil
	}
	units, err := loadUnits[uint32](data, hexUnits, order)
	if err != nil {
		return err
	}
	report(w, st, units)
	return nil
}

func byteOrder(endian string) (binary.ByteOrder, error) {
	switch endian {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unsupported endian %q: want little or big", endian)
	}
}

// loadUnits builds the code unit slice from either raw file bytes or a
// hex string. Exactly one of data and hexUnits is expected to be set.
func loadUnits[T uint16 | uint32](data []byte, hexUnits string, order binary.ByteOrder) ([]T, error) {
	size := unitBytes[T]()
	if hexUnits != "" {
		return parseHex[T](hexUnits)
	}
	if len(data)%size != 0 {
		return nil, fmt.Errorf("file length %d is not a multiple of the unit size %d", len(data), size)
	}
	units := make([]T, len(data)/size)
	for i := range units {
		if size == 2 {
			units[i] = T(order.Uint16(data[i*2:]))
		} else {
			units[i] = T(order.Uint32(data[i*4:]))
		}
	}
	return units, nil
}

func unitBytes[T uint16 | uint32]() int {
	var v T
	if _, ok := any(v).(uint16); ok {
		return 2
	}
	return 4
}

func parseHex[T uint16 | uint32](s string) ([]T, error) {
	bits := unitBytes[T]() * 8
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	units := make([]T, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		v, err := strconv.ParseUint(f, 16, bits)
		if err != nil {
			return nil, fmt.Errorf("parse unit %q: %w", f, err)
		}
		units = append(units, T(v))
	}
	return units, nil
}

// report prints the decode table, unit length, and lossy string for a
// unit slice. A missing terminator is repaired with a note rather than
// rejected, since the tool exists to look at malformed input.
func report[T uint16 | uint32](w io.Writer, st styles, units []T) {
	if len(units) == 0 || units[len(units)-1] != 0 {
		fmt.Fprintln(w, st.note.Render("note: input is not NUL-terminated; appending U+0000"))
		units = append(units, 0)
	}
	if nul := widechar.Wmemchr(T(0), units[:len(units)-1]); nul >= 0 {
		e := werrors.InteriorNul(werrors.PhaseConstruct, uint32(nul))
		fmt.Fprintln(w, st.note.Render(fmt.Sprintf("note: %v; contents after it are ignored", e)))
	}

	str := wcstr.FromSliceWithNulUnchecked(units)
	total := str.Len()

	fmt.Fprintln(w, st.header.Render(fmt.Sprintf("%-8s %-16s %s", "OFFSET", "UNITS", "RESULT")))

	cur := str.Chars()
	off := 0
	for {
		r, err := cur.Next()
		if err == io.EOF {
			break
		}
		_, rem := cur.SizeHint()
		n := total - off - rem

		var hex []string
		for _, u := range units[off : off+n] {
			hex = append(hex, fmt.Sprintf("%04X", uint32(u)))
		}

		var result string
		if err != nil {
			var de *widechar.DecodeError[T]
			if errors.As(err, &de) {
				err = werrors.InvalidUnit(werrors.PhaseDecode, uint32(de.Code()))
			}
			result = st.bad.Render(err.Error())
		} else {
			result = st.scalar.Render(fmt.Sprintf("U+%04X %q", r, r))
		}
		fmt.Fprintf(w, "%-8d %-16s %s\n", off, strings.Join(hex, " "), result)
		off += n
	}

	fmt.Fprintf(w, "\nLength: %d units\n", total)
	fmt.Fprintf(w, "Lossy:  %s\n", str.StringLossy())
}
