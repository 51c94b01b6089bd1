package junit

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/testdiff/testdiff/pkg/result"
)

// Message caps. Stack traces run to megabytes on some producers; the
// message attribute gets a short cap, element bodies a longer one.
const (
	maxMessageLen = 500
	maxDetailLen  = 2000
)

// ReadArchive extracts raw test case records from the zip archive at path.
// Entries are processed in archive order, so a later XML document overrides
// an earlier one under the normalizer's last-write-wins policy. Entries that
// are not XML are ignored; XML entries that fail to parse are skipped and
// returned by name. A bad archive is an error.
func ReadArchive(archivePath string) ([]result.RawRecord, []string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive %s: %w", archivePath, err)
	}
	defer func() { _ = zr.Close() }()
	return readEntries(&zr.Reader)
}

// ReadArchiveBytes is ReadArchive over an in-memory archive.
func ReadArchiveBytes(data []byte) ([]result.RawRecord, []string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive: %w", err)
	}
	return readEntries(zr)
}

func readEntries(zr *zip.Reader) ([]result.RawRecord, []string, error) {
	var records []result.RawRecord
	var skipped []string

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.EqualFold(path.Ext(f.Name), ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			skipped = append(skipped, f.Name)
			continue
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			skipped = append(skipped, f.Name)
			continue
		}
		recs, err := Parse(data)
		if err != nil {
			skipped = append(skipped, f.Name)
			continue
		}
		records = append(records, recs...)
	}
	return records, skipped, nil
}

// Parse extracts records from one JUnit XML document. Accepts both
// <testsuites> and bare <testsuite> roots, and non-UTF-8 encodings declared
// in the XML prolog.
func Parse(data []byte) ([]result.RawRecord, error) {
	root, err := rootElement(data)
	if err != nil {
		return nil, err
	}

	var suites []suiteDoc
	switch root {
	case "testsuites":
		var doc suitesDoc
		if err := decode(data, &doc); err != nil {
			return nil, err
		}
		suites = doc.Suites
	case "testsuite":
		var doc suiteDoc
		if err := decode(data, &doc); err != nil {
			return nil, err
		}
		suites = []suiteDoc{doc}
	default:
		return nil, fmt.Errorf("unexpected root element <%s>", root)
	}

	var records []result.RawRecord
	for i := range suites {
		records = appendSuite(records, &suites[i])
	}
	return records, nil
}

func appendSuite(records []result.RawRecord, s *suiteDoc) []result.RawRecord {
	for i := range s.Cases {
		records = append(records, caseRecord(&s.Cases[i], s.Name))
	}
	for i := range s.Suites {
		records = appendSuite(records, &s.Suites[i])
	}
	return records
}

// caseRecord maps one <testcase> to a raw record. The suite component of
// the identity prefers classname: it is stable across runs, while suite
// names often carry timestamps or shard numbers.
func caseRecord(c *caseDoc, suiteName string) result.RawRecord {
	suite := c.Classname
	if suite == "" {
		suite = suiteName
	}

	rec := result.RawRecord{
		Suite:    suite,
		Name:     c.Name,
		Duration: c.Time,
	}

	switch {
	case c.Error != nil:
		rec.Token = "error"
		rec.Message = detailMessage(c.Error)
	case c.Failure != nil:
		rec.Token = "failure"
		rec.Message = detailMessage(c.Failure)
	case c.Skipped != nil:
		rec.Token = "skipped"
		rec.Message = detailMessage(c.Skipped)
		if isAborted(c.Skipped, c.Status) {
			rec.Token = "aborted"
		}
	case c.Status != "":
		rec.Token = c.Status
	default:
		rec.Token = "passed"
	}
	return rec
}

// isAborted detects aborted tests reported as <skipped>, a convention of
// some JVM runners. Aborted is an issue, not a skip.
func isAborted(d *detailDoc, status string) bool {
	return containsFold(d.Message, "aborted") ||
		containsFold(d.Type, "aborted") ||
		containsFold(status, "aborted")
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

func detailMessage(d *detailDoc) string {
	if msg := strings.TrimSpace(d.Message); msg != "" {
		return clip(msg, maxMessageLen)
	}
	return clip(strings.TrimSpace(d.Content), maxDetailLen)
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// rootElement returns the name of the document's root element.
func rootElement(data []byte) (string, error) {
	dec := newDecoder(data)
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("reading XML: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

func decode(data []byte, v any) error {
	if err := newDecoder(data).Decode(v); err != nil {
		return fmt.Errorf("decoding XML: %w", err)
	}
	return nil
}

func newDecoder(data []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}
