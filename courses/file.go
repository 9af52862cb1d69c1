package courses

import (
	"encoding/json"
	"io"
	"os"
)

// File is the on-disk catalog document.
type File struct {
	Courses []Record `json:"courses"`
}

func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(File{Courses: records})
}

func Decode(r io.Reader) ([]Record, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}
	return file.Courses, nil
}

func WriteFile(name string, records []Record) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Encode(file, records); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func ReadFile(name string) ([]Record, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}
