package cali

import (
	"encoding/json"
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"os"
	"path/filepath"
)

const entriesField = "entries"

type document struct {
	Entries map[Date]DailyEntry `json:"entries"`
}

type persistence struct {
	path     string
	fileMode os.FileMode
	dirMode  os.FileMode
	compact  bool
	digest   uint64
	onDisk   bool
}

func newPersistence(path string, cfg *Config) *persistence {
	return &persistence{
		path:     path,
		fileMode: cfg.FileMode,
		dirMode:  cfg.DirMode,
		compact:  cfg.Compact,
	}
}

// read returns nil when there is nothing persisted yet.
func (p *persistence) read() ([]*DailyEntry, error) {
	b, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(ErrStorageFailed, "could not read %s: %s", p.path, err.Error())
	}

	p.onDisk = true
	p.digest = xxhash.Sum64(b)

	if len(b) == 0 {
		return nil, nil
	}

	return decodeDocument(b)
}

func (p *persistence) write(entries []*DailyEntry) (bool, error) {
	b, err := encodeDocument(entries, p.compact)
	if err != nil {
		return false, err
	}

	digest := xxhash.Sum64(b)
	if p.onDisk && digest == p.digest {
		return false, nil
	}

	if err := p.writeAndSwap(b); err != nil {
		return false, err
	}

	p.onDisk = true
	p.digest = digest
	return true, nil
}

func (p *persistence) writeAndSwap(b []byte) error {
	if err := os.MkdirAll(filepath.Dir(p.path), p.dirMode); err != nil {
		return errors.Wrapf(ErrStorageFailed, "could not create directory for %s: %s", p.path, err.Error())
	}

	tmpFName := p.path + ".tmp"
	tmpF, err := os.OpenFile(tmpFName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, p.fileMode)
	if err != nil {
		return errors.Wrapf(ErrStorageFailed, "could not create %s: %s", tmpFName, err.Error())
	}

	swapped := false
	defer func() {
		if !swapped {
			_ = tmpF.Close()
			_ = os.Remove(tmpFName)
		}
	}()

	n, err := tmpF.Write(b)
	if err != nil {
		return errors.Wrapf(ErrStorageFailed, "could not write into %s: %s", tmpFName, err.Error())
	}

	if n != len(b) {
		return errors.Wrapf(ErrStorageFailed, "short write into %s: %d of %d bytes", tmpFName, n, len(b))
	}

	if err := tmpF.Sync(); err != nil {
		return errors.Wrapf(ErrStorageFailed, "could not sync %s: %s", tmpFName, err.Error())
	}

	if err := tmpF.Close(); err != nil {
		return errors.Wrapf(ErrStorageFailed, "could not close %s: %s", tmpFName, err.Error())
	}

	if err := os.Rename(tmpFName, p.path); err != nil {
		return errors.Wrapf(ErrStorageFailed, "could not swap %s for %s: %s", p.path, tmpFName, err.Error())
	}

	swapped = true
	return nil
}

func encodeDocument(entries []*DailyEntry, compact bool) ([]byte, error) {
	doc := document{Entries: make(map[Date]DailyEntry, len(entries))}
	for _, ent := range entries {
		doc.Entries[ent.Date] = *ent
	}

	var b []byte
	var err error
	if compact {
		b, err = json.Marshal(doc)
	} else {
		b, err = json.MarshalIndent(doc, "", "  ")
	}

	if err != nil {
		return nil, errors.Wrap(err, "could not marshal entries")
	}

	return b, nil
}

func decodeDocument(b []byte) ([]*DailyEntry, error) {
	if err := validateDocument(b); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrapf(ErrCorruptData, "%s", err.Error())
	}

	entries := make([]*DailyEntry, 0, len(doc.Entries))
	for date, ent := range doc.Entries {
		ent := ent
		ent.Date = date
		entries = append(entries, &ent)
	}

	return entries, nil
}

// validateDocument checks the shape json.Unmarshal would silently accept or coerce.
func validateDocument(b []byte) error {
	if !gjson.ValidBytes(b) {
		return errors.Wrap(ErrCorruptData, "not valid JSON")
	}

	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return errors.Wrap(ErrCorruptData, "top level value must be an object")
	}

	entries := root.Get(entriesField)
	if !entries.Exists() || entries.Type == gjson.Null {
		return nil
	}

	if !entries.IsObject() {
		return errors.Wrapf(ErrCorruptData, "%q must be an object", entriesField)
	}

	var err error
	entries.ForEach(func(key, value gjson.Result) bool {
		err = validateEntry(key.String(), value)
		return err == nil
	})

	return err
}

func validateEntry(key string, value gjson.Result) error {
	if d, err := ParseDate(key); err != nil || d.String() != key {
		return errors.Wrapf(ErrCorruptData, "entry key %q is not a YYYY-MM-DD date", key)
	}

	if !value.IsObject() {
		return errors.Wrapf(ErrCorruptData, "entry %s must be an object", key)
	}

	for _, m := range Metrics {
		f := value.Get(m.Field())
		if !f.Exists() {
			continue
		}

		if f.Type != gjson.Number {
			return errors.Wrapf(ErrCorruptData, "entry %s: %s must be a number", key, m.Field())
		}

		if f.Num < 0 {
			return errors.Wrapf(ErrCorruptData, "entry %s: %s is negative", key, m.Field())
		}
	}

	return nil
}
