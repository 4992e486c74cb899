package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed videos.txt
var defaultCatalog []byte

// Default returns the built-in catalog.
func Default() ([]Record, error) {
	return ParseText(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog file. Files ending in .yaml or .yml are decoded as a
// list of records, anything else is read line by line as "title | id | tags".
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	case "", ".txt":
		return ParseText(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func ParseText(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedRecord, lineNumber)
		}

		record := Record{
			Title: strings.TrimSpace(parts[0]),
			ID:    strings.TrimSpace(parts[1]),
		}
		if record.Title == "" || record.ID == "" {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedRecord, lineNumber)
		}

		if len(parts) == 3 {
			for _, tag := range strings.Split(parts[2], ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					record.Tags = append(record.Tags, tag)
				}
			}
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return records, nil
}

func ParseYAML(r io.Reader) ([]Record, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i, record := range records {
		if strings.TrimSpace(record.ID) == "" || strings.TrimSpace(record.Title) == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrMalformedRecord, i+1)
		}
	}

	return records, nil
}
