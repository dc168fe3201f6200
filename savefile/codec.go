package savefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/milk9111/contraptions/parts"
)

// minFields is the shortest line the game's loader accepts. The trailing
// reserved columns may be missing.
const minFields = 6

// SkippedLine records a line Decode could not turn into a part.
type SkippedLine struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (s SkippedLine) String() string {
	return fmt.Sprintf("line %d: %s (%q)", s.Line, s.Reason, s.Text)
}

// Result is what Decode read from a save file.
type Result struct {
	Parts   []parts.Part
	Skipped []SkippedLine
}

// LayerRule derives a part's layer from its object id.
type LayerRule interface {
	LayerOf(id int) int
}

// FormatLine renders one part as a save-file record. The file's y axis
// points the other way from the editor's.
func FormatLine(p parts.Part) string {
	mirror := 0
	if p.Mirror {
		mirror = 1
	}
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,0,0",
		p.ObjectID, p.Skin, p.X, -p.Y, parts.NormalizeRotation(p.Rotation), mirror)
}

// Encode writes one line per part in the given order.
func Encode(w io.Writer, ps []parts.Part) error {
	bw := bufio.NewWriter(w)
	for _, p := range ps {
		if _, err := bw.WriteString(FormatLine(p)); err != nil {
			return fmt.Errorf("savefile: encode: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("savefile: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("savefile: encode: %w", err)
	}
	return nil
}

// ParseLine decodes a single record. Layer comes from rule, never the file.
func ParseLine(line string, rule LayerRule) (parts.Part, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < minFields {
		return parts.Part{}, fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields))
	}
	var v [minFields]int
	for i := 0; i < minFields; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return parts.Part{}, fmt.Errorf("field %d: %q is not an integer", i+1, fields[i])
		}
		v[i] = n
	}
	id, skin := v[0], v[1]
	if id <= 0 {
		return parts.Part{}, fmt.Errorf("object id %d is not positive", id)
	}
	if skin < 0 {
		return parts.Part{}, fmt.Errorf("skin %d is negative", skin)
	}
	layer := parts.LayerCount - 1
	if rule != nil {
		layer = rule.LayerOf(id)
	}
	return parts.Part{
		X:        v[2],
		Y:        -v[3],
		ObjectID: id,
		Layer:    layer,
		Rotation: parts.NormalizeRotation(v[4]),
		Mirror:   v[5] != 0,
		Skin:     skin,
	}, nil
}

// maxLineLen is the longest line Decode keeps. Real records are a few dozen
// bytes; anything past this is skipped without buffering the rest.
const maxLineLen = 4096

// Decode reads every record from r. Bad lines are skipped and reported in
// the result; only a read failure returns an error.
func Decode(r io.Reader, rule LayerRule) (Result, error) {
	var res Result
	br := bufio.NewReader(r)
	n := 0
	for {
		line, long, err := readLine(br)
		if err == io.EOF && len(line) == 0 {
			break
		}
		if err != nil && err != io.EOF {
			return res, fmt.Errorf("savefile: decode: %w", err)
		}
		n++
		text := string(line)
		if long {
			res.Skipped = append(res.Skipped, SkippedLine{
				Line:   n,
				Text:   text[:64] + "...",
				Reason: fmt.Sprintf("line longer than %d bytes", maxLineLen),
			})
			continue
		}
		if strings.TrimSpace(text) != "" {
			p, perr := ParseLine(text, rule)
			if perr != nil {
				res.Skipped = append(res.Skipped, SkippedLine{Line: n, Text: text, Reason: perr.Error()})
			} else {
				res.Parts = append(res.Parts, p)
			}
		}
		if err == io.EOF {
			break
		}
	}
	return res, nil
}

// readLine returns the next line without its line ending. Bytes past
// maxLineLen are dropped and long is set.
func readLine(br *bufio.Reader) (line []byte, long bool, err error) {
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			return line, long, err
		}
		if room := maxLineLen - len(line); len(chunk) > room {
			line = append(line, chunk[:room]...)
			long = true
		} else {
			line = append(line, chunk...)
		}
		if !more {
			return line, long, nil
		}
	}
}
