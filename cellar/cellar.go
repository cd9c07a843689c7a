package cellar

import (
	"errors"
	"fmt"
	"os"

	"github.com/cellardb/cellar/cellar/alloc"
	"github.com/cellardb/cellar/internal/buf"
	"github.com/cellardb/cellar/internal/flush"
	"github.com/cellardb/cellar/internal/format"
)

// Re-exported codec types, so embedders don't import internal packages.
type (
	// Key is a normalized key: a 32-bit integer or a UTF-8 string.
	Key = format.Key
	// Value is a stored value: an integer, a UTF-8 string, or a file blob.
	Value = format.Value
	// Kind tags a Key or Value payload.
	Kind = format.Kind
)

// Payload kinds.
const (
	KindInt    = format.KindInt
	KindString = format.KindString
	KindFile   = format.KindFile
)

// Store is an open container file. At most one Store may have a container
// open for writing; the format provides no locking.
type Store struct {
	path  string
	f     *os.File
	alloc *alloc.Bump
}

// Open opens the container at path, creating an empty file when the path
// does not exist. A freshly created file is zero length and fails every
// operation except Init until initialized.
func Open(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, f: f, alloc: alloc.New(f)}, nil
}

// Create exclusively creates and initializes a fresh container image.
// An existing path yields *DataFileExistsError.
func Create(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, &DataFileExistsError{Path: path}
		}
		return nil, err
	}
	s := &Store{path: path, f: f, alloc: alloc.New(f)}
	if err := s.Init(); err != nil {
		s.f.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the container path the store was opened with.
func (s *Store) Path() string { return s.path }

// Close syncs the container and releases the file handle.
func (s *Store) Close() error {
	syncErr := flush.Sync(s.f)
	closeErr := s.f.Close()
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}

// initChunk is the write granularity used when zeroing the image.
const initChunk = 1 << 20

// Init writes a fresh container image: free-pointer at the start of the
// data region, every link, checksum, and data byte zero. Running Init twice
// produces byte-identical files.
func (s *Store) Init() error {
	var fp [format.SlotSize]byte
	buf.PutI32BE(fp[:], format.ChecksumsDataBoundary)
	if _, err := s.f.WriteAt(fp[:], format.FreePointerOffset); err != nil {
		return err
	}
	zeros := make([]byte, initChunk)
	for off := int64(format.SlotSize); off < format.FullCapacity; {
		n := int64(len(zeros))
		if off+n > format.FullCapacity {
			n = format.FullCapacity - off
		}
		if _, err := s.f.WriteAt(zeros[:n], off); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// Clear resets an already-initialized container. It runs the validity gate
// and then does exactly what Init does; the file does not shrink and
// previously written data bytes are zeroed.
func (s *Store) Clear() error {
	if err := s.ensureValid(); err != nil {
		return err
	}
	return s.Init()
}

// Add stores a key/value pair, normalizing both tokens. A present key
// yields *UsedKeyError.
func (s *Store) Add(key, value string) error {
	if err := s.ensureValid(); err != nil {
		return err
	}
	k := NormalizeKey(key)
	v := NormalizeValue(value)
	found, _, err := s.locate(k)
	if err != nil {
		return err
	}
	if found {
		return &UsedKeyError{Key: k}
	}
	return s.insertCell(k, format.EncodeCell(k, v))
}

// AddFile stores the contents of an external file under key, with value
// type "file".
func (s *Store) AddFile(key, filePath string) error {
	if err := s.ensureValid(); err != nil {
		return err
	}
	k := NormalizeKey(key)
	st, err := os.Stat(filePath)
	if err != nil || st.IsDir() {
		return &MissingFileError{Path: filePath}
	}
	found, _, err := s.locate(k)
	if err != nil {
		return err
	}
	if found {
		return &UsedKeyError{Key: k}
	}
	if st.Size() > format.MaxCellSize {
		return &TooBigDataError{}
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return &MissingFileError{Path: filePath}
	}
	return s.insertCell(k, format.EncodeCell(k, format.FileValue(data)))
}

// Get returns the value stored under key, or *NoSuchKeyError.
func (s *Store) Get(key string) (Value, error) {
	if err := s.ensureValid(); err != nil {
		return Value{}, err
	}
	k := NormalizeKey(key)
	found, idx, err := s.locate(k)
	if err != nil {
		return Value{}, err
	}
	if !found {
		return Value{}, &NoSuchKeyError{Path: s.path, Key: k}
	}
	link, err := s.readLink(idx)
	if err != nil {
		return Value{}, err
	}
	cell, err := s.parseCellAt(link)
	if err != nil {
		return Value{}, err
	}
	return cell.Value, nil
}

// GetFile writes the raw byte representation of key's value to outPath:
// integers as 4 big-endian bytes, strings as UTF-8, file blobs verbatim.
func (s *Store) GetFile(key, outPath string) error {
	v, err := s.Get(key)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, v.Raw(), 0o644)
}

// Contains reports whether key is present.
func (s *Store) Contains(key string) (bool, error) {
	if err := s.ensureValid(); err != nil {
		return false, err
	}
	found, _, err := s.locate(NormalizeKey(key))
	return found, err
}

// Erase removes key's link from the index. The cell bytes stay in the data
// region; the space is not reclaimed until Clear.
func (s *Store) Erase(key string) error {
	if err := s.ensureValid(); err != nil {
		return err
	}
	k := NormalizeKey(key)
	found, idx, err := s.locate(k)
	if err != nil {
		return err
	}
	if !found {
		return &NoSuchKeyError{Path: s.path, Key: k}
	}
	if err := s.eraseAt(idx); err != nil {
		return err
	}
	return s.refreshAllLevels()
}

// ValueTypes accepted by Change.
const (
	TypeData = "data"
	TypeFile = "file"
)

// Change replaces key's value. valueType "data" re-normalizes the token
// (a numeric string becomes an integer value); "file" stores the token's
// bytes verbatim as a file blob. When the new cell fits the old cell's
// length it is overwritten in place and the free-pointer stays put;
// otherwise the key is erased and re-inserted, consuming fresh data-region
// bytes.
func (s *Store) Change(key, valueType, value string) error {
	if err := s.ensureValid(); err != nil {
		return err
	}
	k := NormalizeKey(key)
	var cell []byte
	switch valueType {
	case TypeData:
		cell = format.EncodeCell(k, NormalizeValue(value))
	case TypeFile:
		cell = format.EncodeCell(k, format.FileValue([]byte(value)))
	default:
		return fmt.Errorf("cellar: unknown value type %q", valueType)
	}
	found, idx, err := s.locate(k)
	if err != nil {
		return err
	}
	if !found {
		return &NoSuchKeyError{Path: s.path, Key: k}
	}
	link, err := s.readLink(idx)
	if err != nil {
		return err
	}
	oldLen, err := s.readCellLen(link)
	if err != nil {
		return err
	}
	if int32(len(cell)) <= oldLen {
		if _, err := s.f.WriteAt(cell, int64(link)); err != nil {
			return err
		}
		return s.refreshAllLevels()
	}
	if err := s.eraseAt(idx); err != nil {
		return err
	}
	if err := s.refreshAllLevels(); err != nil {
		return err
	}
	return s.insertCell(k, cell)
}

// Validate reports whether the container passes every integrity check:
// free-pointer at or past the data region start, every non-zero link inside
// the data region, and all level checksums matching. Any read failure
// during the checks means invalid.
func (s *Store) Validate() bool {
	fp, err := s.alloc.Free()
	if err != nil || fp < format.ChecksumsDataBoundary {
		return false
	}
	links := make([]byte, format.LinksChecksumsBoundary-format.LinksStart)
	if _, err := s.f.ReadAt(links, format.LinksStart); err != nil {
		return false
	}
	for off := 0; off < len(links); off += format.SlotSize {
		link := buf.I32BE(links[off:])
		if link != 0 && (link < format.ChecksumsDataBoundary || link >= format.FullCapacity) {
			return false
		}
	}
	for level := 0; level < format.TreeLevels; level++ {
		stored, err := s.readChecksum(level)
		if err != nil {
			return false
		}
		computed, err := s.levelChecksum(level)
		if err != nil || stored != computed {
			return false
		}
	}
	return true
}

// ensureValid is the validity gate run by every operation except Init.
func (s *Store) ensureValid() error {
	if !s.Validate() {
		return &NotDataFileError{Path: s.path}
	}
	return nil
}

// insertCell writes an encoded cell into the data region and links it into
// the tree, refreshing the checksum of the level that changed.
func (s *Store) insertCell(k Key, cell []byte) error {
	n := int32(len(cell))
	if n > format.MaxCellSize {
		return &TooBigDataError{}
	}
	idx, err := s.probeInsert(k)
	if err != nil {
		return err
	}
	off, err := s.alloc.Reserve(n)
	if err != nil {
		switch {
		case errors.Is(err, alloc.ErrTooBig):
			return &TooBigDataError{}
		case errors.Is(err, alloc.ErrNoSpace):
			return &NoMemoryError{Path: s.path}
		}
		return err
	}
	if err := s.writeLink(idx, off); err != nil {
		return err
	}
	if _, err := s.f.WriteAt(cell, int64(off)); err != nil {
		return err
	}
	if err := s.alloc.Commit(off, n); err != nil {
		return err
	}
	return s.refreshLevel(format.Depth(idx))
}

// readLink returns the link word of slot idx. Indexes past MaxTreeIndex
// read as empty.
func (s *Store) readLink(idx int32) (int32, error) {
	if idx < 0 || idx > format.MaxTreeIndex {
		return 0, nil
	}
	var w [format.SlotSize]byte
	if _, err := s.f.ReadAt(w[:], format.SlotOffset(idx)); err != nil {
		return 0, err
	}
	return buf.I32BE(w[:]), nil
}

func (s *Store) writeLink(idx int32, link int32) error {
	var w [format.SlotSize]byte
	buf.PutI32BE(w[:], link)
	_, err := s.f.WriteAt(w[:], format.SlotOffset(idx))
	return err
}

// readCellLen reads the cell_len header of the cell at off, bounds-checked
// against the data region.
func (s *Store) readCellLen(off int32) (int32, error) {
	if off < format.ChecksumsDataBoundary || int64(off)+format.SlotSize > format.FullCapacity {
		return 0, &NotDataFileError{Path: s.path}
	}
	var w [format.SlotSize]byte
	if _, err := s.f.ReadAt(w[:], int64(off)); err != nil {
		return 0, err
	}
	n := buf.I32BE(w[:])
	if n < format.MinCellSize || int64(off)+int64(n) > format.FullCapacity {
		return 0, &NotDataFileError{Path: s.path}
	}
	return n, nil
}

// readCellBytes returns the full record bytes of the cell at off.
func (s *Store) readCellBytes(off int32) ([]byte, error) {
	n, err := s.readCellLen(off)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := s.f.ReadAt(b, int64(off)); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) parseCellAt(off int32) (format.Cell, error) {
	b, err := s.readCellBytes(off)
	if err != nil {
		return format.Cell{}, err
	}
	return format.ParseCell(b)
}
