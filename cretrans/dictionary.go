package cretrans

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// Entry is one (steno, translation, comment) triple. Translation is
// always stored in Plover form, regardless of which dialect an entry
// originally arrived in.
type Entry struct {
	Steno       string
	Translation string
	Comment     string
}

// Dictionary is an insertion-ordered collection of steno entries with a
// reverse index from translation to the steno keys that produce it. It
// is explicitly single-writer: callers needing concurrent access must
// provide their own locking; Dictionary itself holds no mutex.
type Dictionary struct {
	CRESystem string

	instanceID uuid.UUID
	logger     logrus.FieldLogger

	order               []string
	entries             map[string]Entry
	reverse             map[string][]string
	longestStrokeLength int
}

// NewDictionary constructs an empty Dictionary. logger may be nil, in
// which case a default logrus.Logger at WarnLevel is used.
func NewDictionary(creSystem string, logger logrus.FieldLogger) *Dictionary {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		logger = l
	}
	return &Dictionary{
		CRESystem:  creSystem,
		instanceID: uuid.Must(uuid.NewV4()),
		logger:     logger,
		entries:    make(map[string]Entry),
		reverse:    make(map[string][]string),
	}
}

// InstanceID is a correlation id minted once per Dictionary value, used
// purely in log fields -- never part of the on-disk format.
func (d *Dictionary) InstanceID() uuid.UUID {
	return d.instanceID
}

// Len reports the number of distinct steno keys held.
func (d *Dictionary) Len() int {
	return len(d.order)
}

// LongestStrokeLength is the maximum number of "/"-separated components
// across every steno key ever added.
func (d *Dictionary) LongestStrokeLength() int {
	return d.longestStrokeLength
}

func strokeLength(steno string) int {
	if steno == "" {
		return 0
	}
	return strings.Count(steno, "/") + 1
}

// AddEntry inserts or overwrites the entry for steno. First-seen order
// is preserved: overwriting an existing steno does not move it. A
// duplicate override is logged at Warn, not treated as an error --
// steno dictionaries are large and user-edited, and rejecting the whole
// load over one repeated key would be worse than keeping the latest.
func (d *Dictionary) AddEntry(steno, translation, comment string) {
	entry := Entry{Steno: steno, Translation: translation, Comment: comment}

	if old, exists := d.entries[steno]; exists {
		d.logger.WithFields(logrus.Fields{
			"steno": steno,
			"old_translation": old.Translation,
			"new_translation": translation,
			"dictionary_instance": d.instanceID.String(),
		}).Warn("cretrans: duplicate steno override")
		d.removeFromReverse(steno, old.Translation)
	} else {
		d.order = append(d.order, steno)
	}

	d.entries[steno] = entry
	d.reverse[translation] = append(d.reverse[translation], steno)

	if n := strokeLength(steno); n > d.longestStrokeLength {
		d.longestStrokeLength = n
	}
}

func (d *Dictionary) removeFromReverse(steno, translation string) {
	stenos := d.reverse[translation]
	for i, s := range stenos {
		if s == steno {
			d.reverse[translation] = append(stenos[:i], stenos[i+1:]...)
			break
		}
	}
	if len(d.reverse[translation]) == 0 {
		delete(d.reverse, translation)
	}
}

// RemoveEntry deletes the entry for steno, reporting whether it existed.
// It does not recompute LongestStrokeLength downward: it is tracked as a
// running maximum over every key ever added.
func (d *Dictionary) RemoveEntry(steno string) bool {
	entry, ok := d.entries[steno]
	if !ok {
		return false
	}
	delete(d.entries, steno)
	d.removeFromReverse(steno, entry.Translation)
	for i, s := range d.order {
		if s == steno {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the entry for a steno key.
func (d *Dictionary) Lookup(steno string) (Entry, bool) {
	e, ok := d.entries[steno]
	return e, ok
}

// ReverseLookup returns every steno key that produces translation, in
// first-seen order.
func (d *Dictionary) ReverseLookup(translation string) []string {
	return d.reverse[translation]
}

// WriteTo serialises every entry in insertion order as
// "{\*\cxs STENO}TRANSLATION[{\*\cxcomment COMMENT}]\n", re-encoding each
// stored Plover translation back to RTF via PloverToRTF.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, steno := range d.order {
		e := d.entries[steno]
		line := fmt.Sprintf(`{\*\cxs %s}%s`, e.Steno, PloverToRTF(e.Translation))
		if e.Comment != "" {
			line += fmt.Sprintf(`{\*\cxcomment %s}`, e.Comment)
		}
		line += "\n"
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteFile serialises the full RTF dictionary file: header, every
// entry (per WriteTo), and the closing brace footer.
func (d *Dictionary) WriteFile(w io.Writer) error {
	header := fmt.Sprintf(`{\rtf1\ansi{\*\cxrev100}\cxdict{\*\cxsystem %s}`+"\n", d.CRESystem)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if _, err := d.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}")
	return err
}
