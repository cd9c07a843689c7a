package cellar

import "fmt"

// NotDataFileError reports a container that failed the validity gate:
// short or empty file, free-pointer underflow, a link outside the data
// region, or a level checksum mismatch.
type NotDataFileError struct {
	Path string
}

func (e *NotDataFileError) Error() string {
	return fmt.Sprintf("File %s is not data file", e.Path)
}

// DataFileExistsError reports an exclusive create on an existing path.
type DataFileExistsError struct {
	Path string
}

func (e *DataFileExistsError) Error() string {
	return fmt.Sprintf("File with name %s already exists", e.Path)
}

// MissingFileError reports an external file that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("File '%s' doesn't exist", e.Path)
}

// UsedKeyError reports an Add with a key that is already present.
type UsedKeyError struct {
	Key Key
}

func (e *UsedKeyError) Error() string {
	return fmt.Sprintf("The key %s is already used", e.Key)
}

// TreeFullError reports an insert whose BST path ran past the last slot.
type TreeFullError struct {
	Path string
}

func (e *TreeFullError) Error() string {
	return fmt.Sprintf("The data file %s is full", e.Path)
}

// NoMemoryError reports a cell that does not fit the residual data region.
type NoMemoryError struct {
	Path string
}

func (e *NoMemoryError) Error() string {
	return fmt.Sprintf("There is no memory for your data in data file %s now.\nDelete something to add your data", e.Path)
}

// TooBigDataError reports a payload larger than the whole data region.
type TooBigDataError struct{}

func (e *TooBigDataError) Error() string {
	return "The data is too big to store even in empty data file"
}

// NoSuchKeyError reports a lookup for an absent key.
type NoSuchKeyError struct {
	Path string
	Key  Key
}

func (e *NoSuchKeyError) Error() string {
	return fmt.Sprintf("There is no data with the key %s in data file %s", e.Key, e.Path)
}

// InvalidCSVError reports a batch CSV file with a malformed row.
type InvalidCSVError struct {
	Path string
}

func (e *InvalidCSVError) Error() string {
	return fmt.Sprintf("File %s is not valid csv file", e.Path)
}
